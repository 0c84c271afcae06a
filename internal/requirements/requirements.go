// Package requirements reduces raw project answers and device counts into a
// single typed PanelRequirements record consumed by every downstream stage.
package requirements

// GraphicsSoftware enumerates the graphics command center software tiers a
// project answer can select.
type GraphicsSoftware string

const (
	GraphicsNone       GraphicsSoftware = "none"
	GraphicsViewOnly   GraphicsSoftware = "view_only"
	GraphicsFullControl GraphicsSoftware = "full_control"
)

// NetworkType enumerates the physical networking medium a project answer
// can select.
type NetworkType string

const (
	NetworkNone  NetworkType = "none"
	NetworkCopper NetworkType = "copper"
	NetworkFiber  NetworkType = "fiber"
)

// ProjectAnswers is the questionnaire input driving panel sizing. Every
// count field is non-negative.
type ProjectAnswers struct {
	ProtocolCode string `validate:"required"`

	VoiceEvacuation       bool
	PreferAddressableNAC  bool
	FirePhonePresent      bool
	LEDSwitchesPresent    bool
	SmokeManagement       bool
	DoorHolder220VAC      bool
	MonitorModulesWithLEDs bool
	NACClassA             bool
	SpeakerClassA         bool
	ConstantSupervision   bool
	FireDamperFeedback    bool
	FireDamperLEDIndication bool
	DualAmpPerZone        bool
	OneToOneBackupAmp     bool
	OneForAllBackupAmp    bool
	PrinterRequired       bool

	HasGraphicsCommandCenter bool
	GraphicsSoftwareType     GraphicsSoftware
	NetworkingType           NetworkType

	SpeakerWattage    int `validate:"gte=0"`
	RemoteAnnunciatorsWithAudioControl int `validate:"gte=0"`
}

// DeviceBOQ is the bill-of-quantities of field devices driving loop and
// circuit sizing. All fields are non-negative device counts.
type DeviceBOQ struct {
	Smoke         int `validate:"gte=0"`
	Heat          int `validate:"gte=0"`
	Duct          int `validate:"gte=0"`
	Beam          int `validate:"gte=0"`
	Manual        int `validate:"gte=0"`
	Monitor       int `validate:"gte=0"`
	ControlRelay  int `validate:"gte=0"`

	HornStrobe      int `validate:"gte=0"`
	StrobeOnly      int `validate:"gte=0"`
	HornOnly        int `validate:"gte=0"`
	AddrHornStrobe  int `validate:"gte=0"`
	AddrStrobe      int `validate:"gte=0"`
	Speaker         int `validate:"gte=0"`
	SpeakerStrobe   int `validate:"gte=0"`

	SmokeManagementRelays int `validate:"gte=0"`
	FirePhoneJacks        int `validate:"gte=0"`
	RemoteAnnunciators    int `validate:"gte=0"`
}

// PanelRequirements is the fully derived, read-only record every downstream
// stage consumes. It is produced once per (answers, BOQ) pair.
type PanelRequirements struct {
	ProtocolCode string

	VoiceEvacuation      bool
	PreferAddressableNAC bool
	FirePhonePresent     bool
	LEDSwitchesPresent   bool
	SmokeManagement      bool
	DoorHolder220VAC     bool
	MonitorLEDs          bool
	GraphicsControl      bool
	NACClassA            bool
	SpeakerClassA        bool
	ConstantSupervision  bool
	LEDPackagesRequired  bool
	FireDamperControl    bool
	DualAmpPerZone       bool
	OneToOneBackupAmp    bool
	OneForAllBackupAmp   bool
	PrinterRequired      bool
	NetworkCardsRequired bool

	SpeakerWattage      int
	SpeakerCount        int
	FirePhoneCircuits   int
	NACCircuitsRequired int
	SLCLoopsRequired    int
	RelayCount          int
	LoopDeviceCount     int
	NACDeviceCount      int
	IDNetModulesRequired int
	NetworkLinks        int

	RemoteAnnunciatorCount int
}

// ceilDiv computes ceiling integer division; divisor must be positive.
func ceilDiv(numerator, divisor int) int {
	if numerator <= 0 {
		return 0
	}
	return (numerator + divisor - 1) / divisor
}

// Build reduces (answers, boq) into a PanelRequirements record. Every
// derivation here mirrors the original rule engine's build_requirements:
// integer ceiling throughout, derived booleans only ever turned on, never
// off, by a later step.
func Build(answers ProjectAnswers, boq DeviceBOQ) PanelRequirements {
	loopDevices := boq.Smoke + boq.Heat + boq.Duct + boq.Beam + boq.Manual + boq.Monitor + boq.ControlRelay
	idnetModules := max(1, ceilDiv(loopDevices, 500))
	slcLoops := idnetModules * 2

	nacDevices := boq.HornStrobe + boq.StrobeOnly + boq.HornOnly + boq.AddrHornStrobe + boq.AddrStrobe + boq.SpeakerStrobe
	nacCircuits := ceilDiv(nacDevices, 14)

	speakerCount := boq.Speaker + boq.SpeakerStrobe
	speakerWattage := answers.SpeakerWattage
	if speakerWattage == 0 && speakerCount > 0 {
		speakerWattage = 15 * speakerCount
	}

	relayCount := boq.ControlRelay + boq.SmokeManagementRelays
	if answers.FireDamperFeedback || answers.FireDamperLEDIndication {
		relayCount = max(relayCount, 8)
	}
	if answers.DoorHolder220VAC {
		relayCount++
	}

	firePhoneCircuits := ceilDiv(boq.FirePhoneJacks, 10)

	requiresNetworkCards := answers.HasGraphicsCommandCenter ||
		answers.GraphicsSoftwareType == GraphicsViewOnly ||
		answers.GraphicsSoftwareType == GraphicsFullControl ||
		(answers.NetworkingType != NetworkNone && answers.NetworkingType != "")

	networkLinks := 0
	if requiresNetworkCards {
		networkLinks = 1
	}
	if answers.NetworkingType == NetworkFiber {
		networkLinks = max(networkLinks, 2)
	}
	if answers.GraphicsSoftwareType == GraphicsFullControl {
		networkLinks = max(networkLinks, 2)
	}

	requiresLEDPackages := answers.LEDSwitchesPresent || answers.MonitorModulesWithLEDs || answers.FireDamperLEDIndication

	remoteAnnunciators := boq.RemoteAnnunciators
	if answers.RemoteAnnunciatorsWithAudioControl > remoteAnnunciators {
		remoteAnnunciators = answers.RemoteAnnunciatorsWithAudioControl
	}

	return PanelRequirements{
		ProtocolCode:         answers.ProtocolCode,
		VoiceEvacuation:      answers.VoiceEvacuation,
		PreferAddressableNAC: answers.PreferAddressableNAC,
		FirePhonePresent:     answers.FirePhonePresent || firePhoneCircuits > 0,
		LEDSwitchesPresent:   answers.LEDSwitchesPresent || answers.MonitorModulesWithLEDs,
		SmokeManagement:      answers.SmokeManagement,
		DoorHolder220VAC:     answers.DoorHolder220VAC,
		MonitorLEDs:          answers.MonitorModulesWithLEDs,
		GraphicsControl:      answers.GraphicsSoftwareType == GraphicsFullControl,
		NACClassA:            answers.NACClassA,
		SpeakerClassA:        answers.SpeakerClassA,
		ConstantSupervision:  answers.ConstantSupervision,
		LEDPackagesRequired:  requiresLEDPackages,
		FireDamperControl:    answers.FireDamperFeedback || answers.FireDamperLEDIndication,
		DualAmpPerZone:       answers.DualAmpPerZone,
		OneToOneBackupAmp:    answers.OneToOneBackupAmp,
		OneForAllBackupAmp:   answers.OneForAllBackupAmp,
		PrinterRequired:      answers.PrinterRequired,
		NetworkCardsRequired: requiresNetworkCards,

		SpeakerWattage:       speakerWattage,
		SpeakerCount:         speakerCount,
		FirePhoneCircuits:    firePhoneCircuits,
		NACCircuitsRequired:  nacCircuits,
		SLCLoopsRequired:     slcLoops,
		RelayCount:           relayCount,
		LoopDeviceCount:      loopDevices,
		NACDeviceCount:       nacDevices,
		IDNetModulesRequired: idnetModules,
		NetworkLinks:         networkLinks,

		RemoteAnnunciatorCount: remoteAnnunciators,
	}
}
