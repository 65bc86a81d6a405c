// Package archive opens issue-level containers and directories and exposes
// read-only listings of their contents.
//
// An original issue is a zip container holding one folder per scanned page;
// each page folder holds that page's raster images in one of three legacy
// formats, discovered under one conventional sub-path per format. A
// canonical issue is a flat directory of converted images plus a single
// metadata document.
//
// The accessor never mutates anything and never decodes image payloads; it
// works purely on entry names, sizes and the metadata document. Container
// handles are scoped to a single call and released before it returns.
package archive
