package catalog

// enclosureFamily groups synthetic enclosure SKUs by what they are: a
// cabinet backbox, a solid door, or a glass door.
type enclosureFamily string

const (
	FamilyCabinet    enclosureFamily = "cabinet"
	FamilyDoorSolid  enclosureFamily = "door_solid"
	FamilyDoorGlass  enclosureFamily = "door_glass"
)

// CategoryCabinetAssemblies and CategoryCabinetDoors are the specification
// categories synthetic enclosure modules are filed under.
const (
	CategoryCabinetAssemblies = "Cabinet Assemblies"
	CategoryCabinetDoors      = "Cabinet Doors"
)

type enclosureDefinition struct {
	ModelNumber string
	Description string
	Category    string
	Keywords    []string
	Price       Cents
	Size        int
	Family      enclosureFamily
}

// syntheticEnclosures is the built-in list of 1/2/3-bay cabinet and door
// SKUs merged into every catalog, grounded on the original rule engine's
// ENCLOSURE_DEFINITIONS table (prices there are whole dollars; this module
// stores cents, so each is multiplied by 100).
var syntheticEnclosures = []enclosureDefinition{
	{ModelNumber: "4100-9401", Description: "4100ES 1-bay cabinet backbox", Category: CategoryCabinetAssemblies, Keywords: []string{"cabinet", "backbox", "1-bay"}, Price: 95000, Size: 1, Family: FamilyCabinet},
	{ModelNumber: "4100-9402", Description: "4100ES 2-bay cabinet backbox", Category: CategoryCabinetAssemblies, Keywords: []string{"cabinet", "backbox", "2-bay"}, Price: 120000, Size: 2, Family: FamilyCabinet},
	{ModelNumber: "4100-9403", Description: "4100ES 3-bay cabinet backbox", Category: CategoryCabinetAssemblies, Keywords: []string{"cabinet", "backbox", "3-bay"}, Price: 145000, Size: 3, Family: FamilyCabinet},
	{ModelNumber: "4100-9404", Description: "4100ES 1-bay solid door", Category: CategoryCabinetDoors, Keywords: []string{"door", "solid", "1-bay"}, Price: 42000, Size: 1, Family: FamilyDoorSolid},
	{ModelNumber: "4100-9405", Description: "4100ES 2-bay solid door", Category: CategoryCabinetDoors, Keywords: []string{"door", "solid", "2-bay"}, Price: 52000, Size: 2, Family: FamilyDoorSolid},
	{ModelNumber: "4100-9406", Description: "4100ES 3-bay solid door", Category: CategoryCabinetDoors, Keywords: []string{"door", "solid", "3-bay"}, Price: 62000, Size: 3, Family: FamilyDoorSolid},
	{ModelNumber: "4100-9407", Description: "4100ES 1-bay glass door", Category: CategoryCabinetDoors, Keywords: []string{"door", "glass", "1-bay"}, Price: 56000, Size: 1, Family: FamilyDoorGlass},
	{ModelNumber: "4100-9408", Description: "4100ES 2-bay glass door", Category: CategoryCabinetDoors, Keywords: []string{"door", "glass", "2-bay"}, Price: 69000, Size: 2, Family: FamilyDoorGlass},
	{ModelNumber: "4100-9409", Description: "4100ES 3-bay glass door", Category: CategoryCabinetDoors, Keywords: []string{"door", "glass", "3-bay"}, Price: 82000, Size: 3, Family: FamilyDoorGlass},
}

// EnclosureSizeModels returns, for a given family, a size (1/2/3 bays) to
// model-number map — the table the enclosure planner packs bays into.
func EnclosureSizeModels(family enclosureFamily) map[int]string {
	result := make(map[int]string)
	for _, def := range syntheticEnclosures {
		if def.Family == family {
			result[def.Size] = def.ModelNumber
		}
	}
	return result
}

// CabinetSizeToModel, SolidDoorSizeToModel, and GlassDoorSizeToModel are the
// three packing tables the enclosure planner consumes.
func CabinetSizeToModel() map[int]string   { return EnclosureSizeModels(FamilyCabinet) }
func SolidDoorSizeToModel() map[int]string { return EnclosureSizeModels(FamilyDoorSolid) }
func GlassDoorSizeToModel() map[int]string { return EnclosureSizeModels(FamilyDoorGlass) }

func syntheticModule(def enclosureDefinition) Module {
	return Module{
		ModelNumber:             def.ModelNumber,
		Description:             def.Description,
		CompatiblePanels:        []string{"4100ES"},
		CompatibleProtocols:     []string{"IDNet2", "MX"},
		ModuleRole:              RoleMain,
		SpecificationCategories: []string{def.Category},
		Keywords:                append([]string(nil), def.Keywords...),
		Price:                   def.Price,
	}
}

// DefaultCategoryPrices returns the conservative per-category default prices
// used when a module carries no explicit price override, grounded on the
// original rule engine's RuleRepository._load_pricing_overrides fallback
// table (dollars there, cents here).
func DefaultCategoryPrices() map[string]Cents {
	return map[string]Cents{
		"Master Controller":             450000,
		"Power Supplies":                120000,
		"EPS & Accessories":             160000,
		"IDNet Modules":                 95000,
		"Notification Modules":          90000,
		"Audio Options (S4100-0104)":    180000,
		"Telephone (S4100-0104)":        75000,
		"LED-Switch (4100-0032)":        65000,
		"Relay Modules":                 50000,
		"VCC Interfaces (S4100-0104)":   90000,
	}
}
