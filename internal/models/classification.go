package models

// StructureType is the coarse narrative label for the shape of a household's
// support structure.
type StructureType string

// Structure types, most fragile first.
const (
	StructureCycle      StructureType = "cycle"
	StructureSingle     StructureType = "single"
	StructureStruggling StructureType = "struggling"
	StructureStuck      StructureType = "stuck"
	StructureSupported  StructureType = "supported"
	StructureStable     StructureType = "stable"
	StructureGrowing    StructureType = "growing"
	StructureMature     StructureType = "mature"
)

// StructureTypes lists every structure type, most fragile first.
var StructureTypes = []StructureType{
	StructureCycle,
	StructureSingle,
	StructureStruggling,
	StructureStuck,
	StructureSupported,
	StructureStable,
	StructureGrowing,
	StructureMature,
}

// Narrative is the display copy for a classification.
type Narrative struct {
	Name        string
	Subtitle    string
	Description string
}

var structureNarratives = map[StructureType]Narrative{
	StructureCycle: {
		Name:        "Caught in a pressure cycle",
		Subtitle:    "Concentrated pressure | very high risk",
		Description: "Savings and debt are both under heavy strain, and money management, support and outlook have little slack.\nPressure in one place quickly spills into the others.\nThis is a moment to bring in support and break the pressure into smaller pieces.",
	},
	StructureSingle: {
		Name:        "Relying on a single pillar",
		Subtitle:    "Single support | high risk",
		Description: "Life rests mainly on one steady income source,\nwhile savings, support and confidence are comparatively thin.\nThings may be orderly today, but if that pillar moves, little else can absorb the shock.",
	},
	StructureStruggling: {
		Name:        "Just holding on",
		Subtitle:    "Holding on | medium-high risk",
		Description: "Daily life keeps running, but buffers and money management are stretched,\nand confidence about the future is limited.\nThere is effort and action, yet a surprise expense quickly magnifies the pressure.",
	},
	StructureStuck: {
		Name:        "Earning but stuck",
		Subtitle:    "Income without buffer | medium-high risk",
		Description: "Income is reasonably steady, but savings, money management and outlook are lagging.\nMoney comes in and goes out without building a cushion.\nSmall habits around budgeting and saving can change the trajectory.",
	},
	StructureSupported: {
		Name:        "Held up by others",
		Subtitle:    "Network support | medium-low risk",
		Description: "Even with unsteady income or debt pressure,\nthere are people to talk to and the confidence to act.\nResilience comes from relationships and mindset, with more potential than the numbers suggest.",
	},
	StructureStable: {
		Name:        "Steady but thin",
		Subtitle:    "Steady | medium risk",
		Description: "Most areas are workable and nothing is in crisis,\nbut the margins are modest.\nStrengthening one buffer at a time keeps today's stability from being fragile tomorrow.",
	},
	StructureGrowing: {
		Name:        "Growing stronger",
		Subtitle:    "Growing | low-medium risk",
		Description: "A clear sense of direction and workable habits are in place,\nwith the reserve still catching up.\nThe foundations are there; steady saving will turn momentum into security.",
	},
	StructureMature: {
		Name:        "Many pillars",
		Subtitle:    "Diverse support | low risk",
		Description: "Several areas support each other: savings, support, management and confidence.\nEven without an especially high income, the overall structure is flexible.\nPressure exists but is not concentrated, so a change in one area can be absorbed.",
	},
}

// Narrative returns the display copy for the structure type.
func (s StructureType) Narrative() Narrative {
	if n, ok := structureNarratives[s]; ok {
		return n
	}
	return Narrative{Name: string(s)}
}

// Valid reports whether s is a known structure type.
func (s StructureType) Valid() bool {
	_, ok := structureNarratives[s]
	return ok
}

// AnimalType is the fine-grained, metaphor-based resilience label.
type AnimalType string

// Animal types, most fragile first.
const (
	AnimalCat      AnimalType = "cat"
	AnimalAnt      AnimalType = "ant"
	AnimalElephant AnimalType = "elephant"
	AnimalOx       AnimalType = "ox"
	AnimalCamel    AnimalType = "camel"
	AnimalOtter    AnimalType = "otter"
	AnimalMonkey   AnimalType = "monkey"
	AnimalSquirrel AnimalType = "squirrel"
	AnimalBear     AnimalType = "bear"
	AnimalDog      AnimalType = "dog"
	AnimalEagle    AnimalType = "eagle"
	AnimalTurtle   AnimalType = "turtle"
	AnimalHorse    AnimalType = "horse"
)

// AnimalTypes lists every animal type, most fragile first.
var AnimalTypes = []AnimalType{
	AnimalCat,
	AnimalAnt,
	AnimalElephant,
	AnimalOx,
	AnimalCamel,
	AnimalOtter,
	AnimalMonkey,
	AnimalSquirrel,
	AnimalBear,
	AnimalDog,
	AnimalEagle,
	AnimalTurtle,
	AnimalHorse,
}

var animalNarratives = map[AnimalType]Narrative{
	AnimalCat:      {Name: "Stray cat", Description: "Income, savings, debt and day-to-day money all need care at once. You have been surviving on instinct; it is time to find a warm place to land."},
	AnimalAnt:      {Name: "Ant", Description: "You keep working, but there is almost nothing stored for a rainy day. Building even a small reserve changes how the next shock feels."},
	AnimalElephant: {Name: "Elephant", Description: "Strong enough to earn, but carrying a heavy debt load. Lightening that load frees your strength for other things."},
	AnimalOx:       {Name: "Ox", Description: "Dependable income and hard work, with thin savings and loose money habits. A plan for where money goes turns effort into security."},
	AnimalCamel:    {Name: "Camel", Description: "Income is uncertain, but you carry reserves that let you cross dry stretches. Protect the reserve while the income catches up."},
	AnimalOtter:    {Name: "Otter", Description: "Warm, connected and hopeful, while most financial areas are behind. Your network is a real asset; let it help with the money side too."},
	AnimalMonkey:   {Name: "Monkey", Description: "Agile and well supported, with a couple of financial branches that are weak. Use your connections to firm them up."},
	AnimalSquirrel: {Name: "Squirrel", Description: "Saving well with people around you, with one area that still lags. Keep stashing, and give that last area some attention."},
	AnimalBear:     {Name: "Bear", Description: "Strong support around you, but parts of the financial picture lag behind. Hibernation is not a plan; use the support to act."},
	AnimalDog:      {Name: "Loyal dog", Description: "No area is in crisis and you have people around you, though few areas are truly strong. Steady companionship gives you room to grow."},
	AnimalEagle:    {Name: "Eagle", Description: "Strong income and a clear view ahead, flying mostly alone. A wider support network would make the high flight safer."},
	AnimalTurtle:   {Name: "Turtle", Description: "Slow and steady: every area is workable, with a few still short of strong. Your shell protects you; keep moving forward."},
	AnimalHorse:    {Name: "Horse", Description: "Strong across the board, with energy to spare. You can carry long-term goals and help others along the way."},
}

// Narrative returns the display copy for the animal type.
func (a AnimalType) Narrative() Narrative {
	if n, ok := animalNarratives[a]; ok {
		return n
	}
	return Narrative{Name: string(a)}
}

// Valid reports whether a is a known animal type.
func (a AnimalType) Valid() bool {
	_, ok := animalNarratives[a]
	return ok
}

// Priority is a suggested follow-up topic.
type Priority string

// Priority catalog in evaluation order.
const (
	PriorityEmergencyAid      Priority = "emergency financial aid"
	PriorityDebtManagement    Priority = "debt management"
	PrioritySavings           Priority = "savings building"
	PriorityEducation         Priority = "financial education"
	PriorityEmployment        Priority = "employment support"
	PriorityFinancialServices Priority = "financial service access"
	PrioritySocialNetwork     Priority = "social network building"
	PriorityPsychological     Priority = "psychological support"
)

// Priorities lists the catalog in evaluation order.
var Priorities = []Priority{
	PriorityEmergencyAid,
	PriorityDebtManagement,
	PrioritySavings,
	PriorityEducation,
	PriorityEmployment,
	PriorityFinancialServices,
	PrioritySocialNetwork,
	PriorityPsychological,
}
