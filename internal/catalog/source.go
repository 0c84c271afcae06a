package catalog

// Row is a single record from an opaque tabular source — column name to raw
// cell text. Spreadsheet readers are an external collaborator; this package
// only ever sees rows of string cells, never a file format.
type Row map[string]string

// TableSource yields the rows of a module workbook. Implementations might
// wrap a CSV reader, an XLSX reader, or an in-memory fixture; catalog does
// not care which.
type TableSource interface {
	Records() []Row
}

// SliceSource is the simplest TableSource — a fixed slice of rows, handy for
// tests and for callers who have already materialized their sheet.
type SliceSource []Row

// Records implements TableSource.
func (s SliceSource) Records() []Row {
	return s
}

// Required column names, per the catalog source contract (spec §6).
const (
	ColModelNumber        = "Module Model Number"
	ColDescription        = "Description"
	ColCompatiblePanels   = "compatible with Panel"
	ColCompatibleProtocol = "compatible with Protocol"
	ColTotalPointCapacity = "Total Point Capacity Possible"
	ColCircuitCapacity    = "Point Capacity / Circuit Capacity"
	ColSupervisoryCurrent = "Supervisory Current"
	ColAlarmCurrent       = "Alarm Current"
	ColSupportedSpeakers  = "Supports which Speakers"
	ColCircuits           = "Circuits/Points"
	ColCompulsoryMains    = "Possible Compulsory Main Modules"
	ColModuleRole         = "Is it Main module or sub-module mounted on main"
	ColPhysicalSize       = "Physical Size"
	ColMountedOn          = "Mounted ON"
	ColDependencies       = "Another Module needed to function"
	ColSpecCategories     = "Specification Descriptions"
	ColKeywords           = "Keywords associated with the module"
)
