package model

// CoverageCase classifies one original issue by which legacy image formats
// cover its pages. Exactly one coverage case is assigned per issue; the
// classifier's control flow enforces mutual exclusion.
type CoverageCase string

const (
	// CoverageNoContainer: the issue directory has no container archive at all.
	CoverageNoContainer CoverageCase = "no_zip"

	// CoverageCorruptContainer: the container exists but cannot be parsed.
	CoverageCorruptContainer CoverageCase = "corrupted_zip"

	// CoverageMissingPages: at least one page has no image in any format.
	CoverageMissingPages CoverageCase = "missing_page_images"

	// Fully covered issues with mixed formats.

	// CoverageHeteroAll: tif, png and jpg pages all present.
	CoverageHeteroAll CoverageCase = "heterogeneous_all"
	// CoverageHeteroTifPng: exactly tif and png pages.
	CoverageHeteroTifPng CoverageCase = "heterogeneous_tif_png"
	// CoverageHeteroTifJpg: exactly tif and jpg pages.
	CoverageHeteroTifJpg CoverageCase = "heterogeneous_tif_jpg"
	// CoverageHeteroPngJpg: exactly png and jpg pages.
	CoverageHeteroPngJpg CoverageCase = "heterogeneous_png_jpg"

	// Fully covered issues with one format.

	// CoverageHomogeneousTifs: every page covered by a tif.
	CoverageHomogeneousTifs CoverageCase = "homogeneous_tifs"
	// CoverageHomogeneousJpgs: every page covered by a jpg.
	CoverageHomogeneousJpgs CoverageCase = "homogeneous_jpgs"
	// CoverageHomogeneousSinglePngs: every page covered by exactly one png.
	CoverageHomogeneousSinglePngs CoverageCase = "homogeneous_singlepngs"
	// CoverageHomogeneousPngs: every page covered by pngs, at least one page
	// having several png variants.
	CoverageHomogeneousPngs CoverageCase = "homogeneous_pngs"
)

// String returns the case name used in registry keys and report columns.
func (c CoverageCase) String() string { return string(c) }

// AllCoverageCases lists every coverage case in report-column order.
var AllCoverageCases = []CoverageCase{
	CoverageNoContainer,
	CoverageCorruptContainer,
	CoverageHomogeneousTifs,
	CoverageHomogeneousPngs,
	CoverageHomogeneousJpgs,
	CoverageHomogeneousSinglePngs,
	CoverageHeteroAll,
	CoverageHeteroTifPng,
	CoverageHeteroTifJpg,
	CoverageHeteroPngJpg,
	CoverageMissingPages,
}

// AnomalyCase names one inconsistency detected between an original issue and
// its canonical counterpart. Unlike coverage cases, anomaly cases are not
// exclusive: one issue may collect several, each with its own offending paths.
type AnomalyCase string

const (
	// AnomalyIssueWithoutImages: the canonical directory holds no derived images.
	AnomalyIssueWithoutImages AnomalyCase = "issues_wo_jp2"
	// AnomalyIssueWithoutInfoFile: no metadata file found.
	AnomalyIssueWithoutInfoFile AnomalyCase = "issues_wo_infofile"
	// AnomalyWrongNumberInfoFiles: more than one metadata file found.
	AnomalyWrongNumberInfoFiles AnomalyCase = "issues_with_wrongnumber_infofile"
	// AnomalyImageBadName: a derived image filename violates the naming grammar.
	AnomalyImageBadName AnomalyCase = "image_incorrect_filename"
	// AnomalyImageWithoutJournal: a derived image filename lacks the journal code.
	AnomalyImageWithoutJournal AnomalyCase = "imagefile_wo_journalname"
	// AnomalyImageWithoutDate: a derived image filename lacks the issue date.
	AnomalyImageWithoutDate AnomalyCase = "imagefile_wo_correctdate"
	// AnomalyInfoFileWithoutJournal: the metadata filename lacks the journal code.
	AnomalyInfoFileWithoutJournal AnomalyCase = "infofile_wo_journalname"
	// AnomalyInfoFileWithoutDate: the metadata filename lacks the issue date.
	AnomalyInfoFileWithoutDate AnomalyCase = "infofile_wo_correctdate"
	// AnomalyInfoFileWrongImageCount: metadata record count != derived image count.
	AnomalyInfoFileWrongImageCount AnomalyCase = "infofile_with_wrongnumber_img"
	// AnomalyWrongDimensions: a metadata record's source and derived pixel
	// dimensions disagree.
	AnomalyWrongDimensions AnomalyCase = "jp2_wrongdimensions"
	// AnomalyPageWithoutImage: an original page folder has no derived image
	// carrying its page key.
	AnomalyPageWithoutImage AnomalyCase = "page_wo_jp2"
)

// String returns the case name used in registry keys and report columns.
func (c AnomalyCase) String() string { return string(c) }

// AllAnomalyCases lists every anomaly case in report-column order.
var AllAnomalyCases = []AnomalyCase{
	AnomalyIssueWithoutImages,
	AnomalyWrongNumberInfoFiles,
	AnomalyPageWithoutImage,
	AnomalyIssueWithoutInfoFile,
	AnomalyInfoFileWrongImageCount,
	AnomalyImageBadName,
	AnomalyImageWithoutJournal,
	AnomalyInfoFileWithoutJournal,
	AnomalyImageWithoutDate,
	AnomalyInfoFileWithoutDate,
	AnomalyWrongDimensions,
}
