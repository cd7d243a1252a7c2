package seed

import (
	"encoding/json"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Catalog is the full reference dataset loaded at startup.
type Catalog struct {
	Bosses         []*domain.Boss
	Characters     []*domain.Character
	Builds         []*domain.Build
	Achievements   []*domain.Achievement
	Walkthroughs   []*domain.Walkthrough
	Creatures      []*domain.Creature
	Secrets        []*domain.Secret
	WeaponSkills   []*domain.WeaponSkill
	WeaponPassives []*domain.WeaponPassive
}

func list(items ...string) datatypes.JSON {
	b, _ := json.Marshal(items)
	return b
}

func object(v any) datatypes.JSON {
	b, _ := json.Marshal(v)
	return b
}

func newID() string {
	return uuid.New().String()
}

// NewCatalog builds the fixed catalog with fresh IDs. Team and build
// recommendations are name references; every name used here resolves
// against this catalog, but the join itself tolerates dangling names.
func NewCatalog() *Catalog {
	return &Catalog{
		Bosses:         bosses(),
		Characters:     characters(),
		Builds:         builds(),
		Achievements:   achievements(),
		Walkthroughs:   walkthroughs(),
		Creatures:      creatures(),
		Secrets:        secrets(),
		WeaponSkills:   weaponSkills(),
		WeaponPassives: weaponPassives(),
	}
}

func bosses() []*domain.Boss {
	return []*domain.Boss{
		{
			ID:               newID(),
			Name:             "Gladius, Beast of Night",
			ExpeditionName:   "Tricephalos",
			Description:      "A three-headed hound wreathed in dark flame. Splits into separate beasts mid-fight.",
			Weaknesses:       list("Holy"),
			DamageTypes:      list("Physical", "Fire"),
			DifficultyRating: 4,
			MinLevel:         1,
			MaxLevel:         12,
			Strategies: list(
				"Spread out when the hound splits to avoid overlapping sweeps",
				"Use holy-infused weapons during the chain-whip phase",
				"Regroup at the arena edge before the flame dash",
			),
			Loot:              list("Relic of the Beast", "Sovereign Sigils"),
			RecommendedTeam:   list("Guardian", "Ironeye", "Wylder"),
			RecommendedBuilds: list("Colossal Titan", "Shadow Dancer"),
		},
		{
			ID:               newID(),
			Name:             "Adel, Baron of Night",
			ExpeditionName:   "Gaping Jaw",
			Description:      "A formidable draconic foe whose devouring maw demands careful positioning.",
			Weaknesses:       list("Poison"),
			DamageTypes:      list("Dark", "Bleed"),
			DifficultyRating: 6,
			MinLevel:         5,
			MaxLevel:         14,
			Strategies: list(
				"Apply poison early and keep it ticking through the fight",
				"Watch for the grab after the roar, it one-shots low vigor runs",
				"Ranged characters should bait the lunge from the flanks",
			),
			Loot:              list("Baron's Relic", "Sovereign Sigils"),
			RecommendedTeam:   list("Duchess", "Executor", "Ironeye"),
			RecommendedBuilds: list("Shadow Dancer", "Colossal Titan"),
		},
		{
			ID:               newID(),
			Name:             "Gnoster, Wisdom of Night",
			ExpeditionName:   "Sentient Pest",
			Description:      "A twin entity of moth and scorpion, punishing teams that split their focus poorly.",
			Weaknesses:       list("Fire"),
			DamageTypes:      list("Magic", "Poison"),
			DifficultyRating: 5,
			MinLevel:         4,
			MaxLevel:         13,
			Strategies: list(
				"Burn the moth's scales off before committing to the scorpion",
				"Keep a fire pot reserve for the burrow phase",
				"Split two-and-one, never one-one-one",
			),
			Loot:              list("Relic of Wisdom", "Sovereign Sigils"),
			RecommendedTeam:   list("Recluse", "Raider", "Wylder"),
			RecommendedBuilds: list("Lunar Overlord", "Colossal Titan"),
		},
		{
			ID:               newID(),
			Name:             "Maris, Fathom of Night",
			ExpeditionName:   "Augur",
			Description:      "A drifting abyssal mass that floods the arena and commands shoals of spectral fish.",
			Weaknesses:       list("Lightning"),
			DamageTypes:      list("Magic", "Sleep"),
			DifficultyRating: 5,
			MinLevel:         4,
			MaxLevel:         13,
			Strategies: list(
				"Lightning infusions trivialize the flooded phase",
				"Cure sleep buildup immediately or the shoal will finish you",
				"Chase the true body, the mirages shatter on one hit",
			),
			Loot:              list("Fathom Relic", "Sovereign Sigils"),
			RecommendedTeam:   list("Revenant", "Ironeye", "Recluse"),
			RecommendedBuilds: list("Lunar Overlord"),
		},
		{
			ID:               newID(),
			Name:             "Libra, Creature of Night",
			ExpeditionName:   "Equilibrious Beast",
			Description:      "A goat-headed demon that embodies balance, offering cursed bargains before the fight.",
			Weaknesses:       list("Madness"),
			DamageTypes:      list("Fire", "Madness"),
			DifficultyRating: 7,
			MinLevel:         7,
			MaxLevel:         15,
			Strategies: list(
				"Refuse the bargain unless the team is overleveled",
				"Break eye contact during the gold gaze to avoid madness buildup",
				"Alternate aggro when the scales tip to prevent the imbalance slam",
			),
			Loot:              list("Relic of Equilibrium", "Sovereign Sigils"),
			RecommendedTeam:   list("Recluse", "Revenant", "Wylder"),
			RecommendedBuilds: list("Lunar Overlord", "Shadow Dancer"),
		},
		{
			ID:               newID(),
			Name:             "Fulghor, Champion of Nightglow",
			ExpeditionName:   "Darkdrift Knight",
			Description:      "A centaur knight of relentless momentum whose dark blade drifts through guard.",
			Weaknesses:       list("Lightning"),
			DamageTypes:      list("Physical", "Dark"),
			DifficultyRating: 8,
			MinLevel:         9,
			MaxLevel:         15,
			Strategies: list(
				"Dodge into the charge, never away from it",
				"Save stance-break tools for the sword-plant recovery",
				"Coordinate burst windows during the dismount phase",
			),
			Loot:              list("Champion's Relic", "Sovereign Sigils"),
			RecommendedTeam:   list("Raider", "Guardian", "Ironeye"),
			RecommendedBuilds: list("Colossal Titan", "Shadow Dancer"),
		},
		{
			ID:               newID(),
			Name:             "Caligo, Miasma of Night",
			ExpeditionName:   "Fissure in the Fog",
			Description:      "A frost dragon wrapped in freezing fog that swallows the arena and the unwary.",
			Weaknesses:       list("Fire"),
			DamageTypes:      list("Frost", "Magic"),
			DifficultyRating: 8,
			MinLevel:         10,
			MaxLevel:         15,
			Strategies: list(
				"Carry fire pots to clear the fog walls",
				"Never chase kills into the miasma, regroup on the glowing rocks",
				"Punish the grounded head after the frost breath sweep",
			),
			Loot:              list("Miasma Relic", "Sovereign Sigils"),
			RecommendedTeam:   list("Raider", "Recluse", "Wylder"),
			RecommendedBuilds: list("Colossal Titan", "Lunar Overlord"),
		},
		{
			ID:               newID(),
			Name:             "Heolstor the Nightlord",
			ExpeditionName:   "Night Aspect",
			Description:      "The shaper of night itself. A two-phase duel against the origin of the Nightreign.",
			Weaknesses:       list("Holy"),
			DamageTypes:      list("Dark", "Physical"),
			DifficultyRating: 10,
			MinLevel:         12,
			MaxLevel:         15,
			Strategies: list(
				"Bank holy infusions for phase two, nothing else sticks",
				"Rotate revives so no two allies are down during the night wave",
				"Learn the blade-extension delay, panic rolling feeds him",
			),
			Loot:              list("Heart of Night", "Sovereign Sigils"),
			RecommendedTeam:   list("Guardian", "Ironeye", "Recluse"),
			RecommendedBuilds: list("Colossal Titan", "Lunar Overlord"),
		},
	}
}

func characters() []*domain.Character {
	return []*domain.Character{
		{
			ID:                newID(),
			Name:              "Wylder",
			Description:       "An all-rounder knight with solid stats and a grappling claw for closing gaps.",
			PrimaryStat:       "Balanced",
			WeaponType:        "Sword",
			Abilities:         list("Claw Shot", "Onslaught Stake"),
			DamageTypes:       list("Physical", "Fire"),
			RecommendedBuilds: list("Colossal Titan", "Shadow Dancer"),
			StartingEquipment: list("Longsword", "Chain Mail"),
			Playstyle:         "Versatile",
			MaxLevel:          15,
		},
		{
			ID:                newID(),
			Name:              "Guardian",
			Description:       "A halberd-and-greatshield tank with the kit to shelter an entire expedition.",
			PrimaryStat:       "Strength",
			WeaponType:        "Halberd",
			Abilities:         list("Steel Guard", "Wings of Salvation"),
			DamageTypes:       list("Physical"),
			RecommendedBuilds: list("Colossal Titan"),
			StartingEquipment: list("Halberd", "Greatshield", "Plate Armor"),
			Playstyle:         "Tank",
			MaxLevel:          15,
		},
		{
			ID:                newID(),
			Name:              "Ironeye",
			Description:       "A dexterity archer whose Marking skill exposes weak points for the whole team.",
			PrimaryStat:       "Dexterity",
			WeaponType:        "Bow",
			Abilities:         list("Marking", "Single Shot"),
			DamageTypes:       list("Physical", "Pierce"),
			RecommendedBuilds: list("Shadow Dancer", "Lunar Overlord"),
			StartingEquipment: list("Composite Bow", "Leather Armor"),
			Playstyle:         "Ranged DPS",
			MaxLevel:          15,
		},
		{
			ID:                newID(),
			Name:              "Duchess",
			Description:       "A dagger duelist whose Restage ability replays recent damage for heavy burst.",
			PrimaryStat:       "Dexterity",
			WeaponType:        "Daggers",
			Abilities:         list("Restage", "Finale"),
			DamageTypes:       list("Physical", "Bleed"),
			RecommendedBuilds: list("Shadow Dancer"),
			StartingEquipment: list("Twin Daggers", "Thief Outfit"),
			Playstyle:         "Burst DPS",
			MaxLevel:          15,
		},
		{
			ID:                newID(),
			Name:              "Raider",
			Description:       "A strength brute built around colossal weapons and trading hits without flinching.",
			PrimaryStat:       "Strength",
			WeaponType:        "Colossal Weapon",
			Abilities:         list("Retaliate", "Totem Stela"),
			DamageTypes:       list("Physical", "Strike"),
			RecommendedBuilds: list("Colossal Titan"),
			StartingEquipment: list("Great Hammer", "Heavy Armor"),
			Playstyle:         "Tank DPS",
			MaxLevel:          15,
		},
		{
			ID:                newID(),
			Name:              "Revenant",
			Description:       "A support summoner who calls spirit allies and shields the team from death itself.",
			PrimaryStat:       "Faith",
			WeaponType:        "Catalyst",
			Abilities:         list("Summon Spirit", "Immortal March"),
			DamageTypes:       list("Holy", "Magic"),
			RecommendedBuilds: list("Lunar Overlord"),
			StartingEquipment: list("Sacred Catalyst", "Ritual Robes"),
			Playstyle:         "Support",
			MaxLevel:          15,
		},
		{
			ID:                newID(),
			Name:              "Recluse",
			Description:       "An affinity sorceress who harvests elemental residues to fuel devastating spells.",
			PrimaryStat:       "Intelligence",
			WeaponType:        "Staff",
			Abilities:         list("Magic Cocktail", "Soulblood Song"),
			DamageTypes:       list("Magic", "Fire"),
			RecommendedBuilds: list("Lunar Overlord"),
			StartingEquipment: list("Sorcerer's Staff", "Robes"),
			Playstyle:         "Magic DPS",
			MaxLevel:          15,
		},
		{
			ID:                newID(),
			Name:              "Executor",
			Description:       "A cursed-blade duelist who parries everything and transforms into a beast when pushed.",
			PrimaryStat:       "Dexterity",
			WeaponType:        "Katana",
			Abilities:         list("Cursed Sword", "Aspects of the Crucible: Beast"),
			DamageTypes:       list("Physical", "Slash"),
			RecommendedBuilds: list("Shadow Dancer", "Colossal Titan"),
			StartingEquipment: list("Katana", "Light Armor"),
			Playstyle:         "Melee DPS",
			MaxLevel:          15,
		},
	}
}

func builds() []*domain.Build {
	return []*domain.Build{
		{
			ID:              newID(),
			Name:            "Colossal Titan",
			Character:       "Raider",
			Type:            "Strength",
			Description:     "Tank damage and deliver devastating hits with colossal weapons.",
			PrimaryWeapon:   "Crescent Moon Greatblade",
			SecondaryWeapon: "Axe of Godfrey",
			ArmorSet:        "Lion Knight's Bulwark",
			Talismans: list(
				"Radagon's Scarseal",
				"Great-Jar's Arsenal",
				"Dragoncrest Greatshield Talisman",
			),
			RecommendedStats: object(map[string]int{
				"Strength":  60,
				"Vigor":     50,
				"Endurance": 40,
			}),
			Strategy: "Tank damage and deliver devastating hits with wide trajectories",
			BestFor:  list("Raider", "Guardian", "Wylder"),
		},
		{
			ID:              newID(),
			Name:            "Shadow Dancer",
			Character:       "Duchess",
			Type:            "Dexterity",
			Description:     "Utilize poison and bleed effects with rapid combos and high mobility.",
			PrimaryWeapon:   "Twin Scaled Fang Daggers",
			SecondaryWeapon: "Red-Moon Wakizashi",
			ArmorSet:        "Nightweave Attire",
			Talismans: list(
				"Rotten Winged Sword Insignia",
				"Bloodlord's Emblem",
				"Assassin's Cerulean Dagger",
			),
			RecommendedStats: object(map[string]int{
				"Dexterity": 60,
				"Vigor":     35,
				"Endurance": 45,
			}),
			Strategy: "Rapid combos with poison and bleed effects, maintaining high mobility",
			BestFor:  list("Duchess", "Executor", "Ironeye"),
		},
		{
			ID:              newID(),
			Name:            "Lunar Overlord",
			Character:       "Recluse",
			Type:            "Intelligence",
			Description:     "Employ high-damage sorceries while managing FP efficiently.",
			PrimaryWeapon:   "Moonlight Crescent Staff",
			SecondaryWeapon: "Crystal Sword",
			ArmorSet:        "Sage of the Cosmos",
			Talismans: list(
				"Radagon Icon",
				"Moonveil Crest",
				"Cerulean Amber Medallion",
			),
			RecommendedStats: object(map[string]int{
				"Intelligence": 60,
				"Vigor":        30,
				"Mind":         50,
			}),
			Strategy: "High-damage sorceries with efficient FP management",
			BestFor:  list("Recluse", "Revenant", "Wylder"),
		},
		{
			ID:              newID(),
			Name:            "Dawnlight Ward",
			Character:       "Revenant",
			Type:            "Faith",
			Description:     "Sustain the team with incantations while spirits hold the line.",
			PrimaryWeapon:   "Sacred Catalyst",
			SecondaryWeapon: "Blessed Mace",
			ArmorSet:        "Vestments of the Dawn",
			Talismans: list(
				"Sacred Scorpion Charm",
				"Old Lord's Talisman",
				"Flock's Canvas Talisman",
			),
			RecommendedStats: object(map[string]int{
				"Faith": 55,
				"Mind":  45,
				"Vigor": 35,
			}),
			Strategy: "Keep spirits active, weave heals between holy burst windows",
			BestFor:  list("Revenant", "Guardian"),
		},
	}
}

func achievements() []*domain.Achievement {
	return []*domain.Achievement{
		{ID: newID(), Name: "Nightreign Sovereign", Description: "Earn every other achievement.", Category: "Completion", Requirements: "Unlock all achievements", Reward: "Platinum Trophy", Difficulty: "Extreme", Percentage: 1.8, Rank: 1},
		{ID: newID(), Name: "Night Aspect Felled", Description: "Defeat Heolstor the Nightlord.", Category: "Boss", Requirements: "Complete the Night Aspect expedition", Reward: "Heart of Night", Difficulty: "Extreme", Percentage: 9.4, Rank: 2},
		{ID: newID(), Name: "All Nightlords Felled", Description: "Defeat every Nightlord at least once.", Category: "Boss", Requirements: "Defeat all eight Nightlords", Reward: "Sovereign Crest", Difficulty: "Hard", Percentage: 11.2, Rank: 3},
		{ID: newID(), Name: "Remembered", Description: "Complete every character's remembrance quest.", Category: "Quest", Requirements: "Finish all remembrance walkthroughs", Reward: "Chronicle Page", Difficulty: "Hard", Percentage: 14.6, Rank: 4},
		{ID: newID(), Name: "Armscrafted", Description: "Fully upgrade any starting weapon.", Category: "Collection", Requirements: "Raise one weapon to its final tier", Reward: "Smithing Emblem", Difficulty: "Medium", Percentage: 23.1, Rank: 5},
		{ID: newID(), Name: "Relic Hoarder", Description: "Collect fifty relics across expeditions.", Category: "Collection", Requirements: "Hold 50 relics in total", Reward: "Relic Satchel", Difficulty: "Medium", Percentage: 28.7, Rank: 6},
		{ID: newID(), Name: "Three as One", Description: "Clear an expedition without a single ally falling.", Category: "Challenge", Requirements: "No deaths for the full expedition", Reward: "Unity Sigil", Difficulty: "Medium", Percentage: 33.5, Rank: 7},
		{ID: newID(), Name: "Stormcaller", Description: "Fell a Nightlord by exploiting its elemental weakness.", Category: "Boss", Requirements: "Land the killing blow with a weakness element", Reward: "Elemental Whetblade", Difficulty: "Easy", Percentage: 47.9, Rank: 8},
		{ID: newID(), Name: "First Expedition", Description: "Survive your first full night cycle.", Category: "Progress", Requirements: "Complete any expedition day", Reward: "Murk Pouch", Difficulty: "Easy", Percentage: 78.3, Rank: 9},
		{ID: newID(), Name: "Roundtable Return", Description: "Reach the Roundtable Hold between expeditions.", Category: "Progress", Requirements: "Return from the Limveld once", Reward: "Hearth Token", Difficulty: "Easy", Percentage: 92.6, Rank: 10},
	}
}

func walkthroughs() []*domain.Walkthrough {
	return []*domain.Walkthrough{
		{
			ID:          newID(),
			Character:   "Wylder",
			Title:       "The Knight Errant's Oath",
			Description: "Wylder's remembrance quest, tracing the oath that bound him to the night.",
			Chapters: object([]domain.WalkthroughChapter{
				{Chapter: 1, Title: "Embers of the Hold", Objective: "Speak with the Priestess after your first expedition.", Steps: []string{"Complete any expedition", "Return to the Roundtable Hold", "Find the Priestess by the hearth"}, Reward: "Wylder's Old Scabbard"},
				{Chapter: 2, Title: "The Broken Stake", Objective: "Recover the Onslaught Stake fragment in the Limveld.", Steps: []string{"Begin an expedition as Wylder", "Locate the ruined chapel near the first night circle", "Defeat the knight revenant guarding the fragment"}, Reward: "Stake Fragment"},
				{Chapter: 3, Title: "Oathkeeper", Objective: "Fell a Nightlord with the reforged stake.", Steps: []string{"Reforge the stake at the Hold", "Defeat any Nightlord using Onslaught Stake for the final blow"}, Reward: "Remembrance of the Knight Errant"},
			}),
		},
		{
			ID:          newID(),
			Character:   "Duchess",
			Title:       "A Scene Replayed",
			Description: "Duchess's remembrance quest, unwinding the murder she cannot stop restaging.",
			Chapters: object([]domain.WalkthroughChapter{
				{Chapter: 1, Title: "The Empty Stage", Objective: "Examine the mask in Duchess's quarters.", Steps: []string{"Unlock Duchess", "Rest at the Hold and enter her quarters", "Examine the porcelain mask"}, Reward: "Cracked Mask"},
				{Chapter: 2, Title: "Understudy", Objective: "Restage a killing blow against a night creature three times.", Steps: []string{"Use Restage to finish three elite creatures in one expedition"}, Reward: "Stage Notes"},
				{Chapter: 3, Title: "Curtain Call", Objective: "Confront the phantom playwright.", Steps: []string{"Carry the Cracked Mask into the Equilibrious Beast expedition", "Defeat Libra without accepting the bargain", "Speak the playwright's true name at the arena center"}, Reward: "Remembrance of the Understudy"},
			}),
		},
		{
			ID:          newID(),
			Character:   "Ironeye",
			Title:       "The Unblinking Mark",
			Description: "Ironeye's remembrance quest, following the mark he carved into the night itself.",
			Chapters: object([]domain.WalkthroughChapter{
				{Chapter: 1, Title: "Fletcher's Debt", Objective: "Collect spectral arrowheads from marked foes.", Steps: []string{"Mark ten creatures in a single expedition", "Collect the arrowheads they drop"}, Reward: "Spectral Quiver"},
				{Chapter: 2, Title: "The Long Shot", Objective: "Strike Fulghor's visor from across the arena.", Steps: []string{"Enter the Darkdrift Knight expedition as Ironeye", "Land Single Shot on the visor during the dismount phase"}, Reward: "Visor Shard"},
				{Chapter: 3, Title: "Eye of the Storm", Objective: "Keep every Nightlord marked until dawn.", Steps: []string{"Mark the Nightlord within the first minute of the duel", "Refresh the mark until the fight ends", "Fell the Nightlord before dawn"}, Reward: "Remembrance of the Unblinking"},
			}),
		},
	}
}

func creatures() []*domain.Creature {
	return []*domain.Creature{
		{
			ID: newID(), Name: "Nightfarer Wolfpack", Type: "Beast",
			Description: "Packs of shadow-touched wolves that hunt expedition stragglers at dusk.",
			Location:    "Limveld Plains",
			Weaknesses:  list("Fire"), Resistances: list("Dark"), DamageTypes: list("Physical", "Bleed"),
			ThreatLevel: "Low",
			Notes:       "Aggro the alpha first, the pack scatters when it falls.",
		},
		{
			ID: newID(), Name: "Albinauric Archpriest", Type: "Humanoid",
			Description: "A frost-robed caster that anchors night circles with freezing rituals.",
			Location:    "Frozen Reaches",
			Weaknesses:  list("Lightning", "Strike"), Resistances: list("Frost", "Magic"), DamageTypes: list("Frost", "Magic"),
			ThreatLevel: "Moderate",
			Notes:       "Interrupt the ritual chant or the arena floor freezes over.",
		},
		{
			ID: newID(), Name: "Royal Carian Knight", Type: "Undead",
			Description: "A spectral knight bound to ruined watchtowers, dueling any who climb.",
			Location:    "Ruined Watchtowers",
			Weaknesses:  list("Holy"), Resistances: list("Magic", "Pierce"), DamageTypes: list("Magic", "Physical"),
			ThreatLevel: "Moderate",
			Notes:       "Parryable. Drops glintstone relics when felled with holy damage.",
		},
		{
			ID: newID(), Name: "Miasma Wyrmling", Type: "Dragon",
			Description: "A juvenile frost wyrm trailing Caligo's fog across the high passes.",
			Location:    "High Passes",
			Weaknesses:  list("Fire"), Resistances: list("Frost"), DamageTypes: list("Frost"),
			ThreatLevel: "High",
			Notes:       "Flees at half health unless grounded during the breath sweep.",
		},
		{
			ID: newID(), Name: "Gravetide Shambler", Type: "Undead",
			Description: "A mass of drowned dead that drags victims into flooded barrows.",
			Location:    "Flooded Barrows",
			Weaknesses:  list("Holy", "Fire"), Resistances: list("Pierce", "Sleep"), DamageTypes: list("Physical", "Dark"),
			ThreatLevel: "High",
			Notes:       "The grab is unbreakable solo. Keep an ally in revive range.",
		},
		{
			ID: newID(), Name: "Sovereign's Herald", Type: "Abyssal",
			Description: "A faceless envoy of the Nightlord that appears on the final night to test the worthy.",
			Location:    "Final Night Circle",
			Weaknesses:  list("Holy"), Resistances: list("Dark", "Magic", "Frost"), DamageTypes: list("Dark", "Madness"),
			ThreatLevel: "Severe",
			Notes:       "Optional. Felling it weakens the Nightlord's opening phase.",
		},
	}
}

func secrets() []*domain.Secret {
	return []*domain.Secret{
		{
			ID: newID(), Name: "The Sunken Bell Tower", Category: "Location",
			Description: "A submerged tower that surfaces only during the second night's rain.",
			Location:    "Limveld Lake",
			HowToFind:   "Wait out the second-night rain at the lake's edge, then ring the half-drowned bell.",
			Reward:      "Stonesword Relic", Difficulty: "Medium",
		},
		{
			ID: newID(), Name: "Everdark Passage", Category: "Shortcut",
			Description: "A hidden tunnel linking the starting camp to the inner night circle.",
			Location:    "Starting Camp Cliffs",
			HowToFind:   "Strike the illusory cliff wall behind the supply cache three times.",
			Reward:      "Skips one day of travel", Difficulty: "Easy",
		},
		{
			ID: newID(), Name: "The Priestess's Locket", Category: "Item",
			Description: "A locket that reveals the Priestess's part in the first Nightreign.",
			Location:    "Roundtable Hold",
			HowToFind:   "Examine the hearth after completing three expeditions, then ask the Priestess about the ash.",
			Reward:      "Locket of the First Night", Difficulty: "Easy",
		},
		{
			ID: newID(), Name: "Wyrm Graveyard Cache", Category: "Treasure",
			Description: "A hoard of relics buried beneath the bones of an elder wyrm.",
			Location:    "High Passes",
			HowToFind:   "Fell the Miasma Wyrmling atop the bone pile; the ribcage collapses into the cache.",
			Reward:      "Three random relics", Difficulty: "Hard",
		},
		{
			ID: newID(), Name: "The Mimic's Bargain", Category: "Encounter",
			Description: "A chest that offers a trade instead of teeth, once per expedition.",
			Location:    "Ruined Watchtowers",
			HowToFind:   "Approach the lone chest on the top floor without weapons drawn.",
			Reward:      "Trades any relic for a rarer one", Difficulty: "Medium",
		},
		{
			ID: newID(), Name: "Dawnsong Shrine", Category: "Location",
			Description: "A shrine that grants a blessing lasting until the next dawn.",
			Location:    "Limveld Plains",
			HowToFind:   "Follow the birdsong east of the first night circle before the first dusk.",
			Reward:      "Dawnsong Blessing (revive once per night)", Difficulty: "Hard",
		},
	}
}

func weaponSkills() []*domain.WeaponSkill {
	return []*domain.WeaponSkill{
		{ID: newID(), Name: "Moonlight Slash", Description: "A sweeping crescent of pure glintstone light.", Category: "Ash of War", FPCost: 18, DamageType: "Magic", CompatibleWeapons: list("Greatsword", "Katana", "Sword")},
		{ID: newID(), Name: "Lion's Poise", Description: "Brace behind the blade, negating the next heavy hit.", Category: "Stance", FPCost: 10, DamageType: "Physical", CompatibleWeapons: list("Colossal Weapon", "Halberd", "Greatsword")},
		{ID: newID(), Name: "Stormbind", Description: "Call lightning down the length of the weapon.", Category: "Ash of War", FPCost: 22, DamageType: "Lightning", CompatibleWeapons: list("Halberd", "Spear", "Sword")},
		{ID: newID(), Name: "Bloodletting Waltz", Description: "A spinning combo that stacks bleed with every pass.", Category: "Ash of War", FPCost: 14, DamageType: "Bleed", CompatibleWeapons: list("Daggers", "Katana")},
		{ID: newID(), Name: "Rain of Marks", Description: "Loose a volley that marks every foe it grazes.", Category: "Archery", FPCost: 16, DamageType: "Pierce", CompatibleWeapons: list("Bow", "Composite Bow")},
		{ID: newID(), Name: "Sacred Reprisal", Description: "A holy counter that erupts after a timed block.", Category: "Stance", FPCost: 12, DamageType: "Holy", CompatibleWeapons: list("Mace", "Halberd", "Catalyst")},
	}
}

func weaponPassives() []*domain.WeaponPassive {
	return []*domain.WeaponPassive{
		{ID: newID(), Name: "Nightveil Edge", Description: "The blade drinks ambient dark after dusk.", Category: "Elemental", Effect: "+15% damage during night phases", CompatibleCharacters: list("Duchess", "Executor", "Wylder")},
		{ID: newID(), Name: "Bulwark Tempering", Description: "Layered tempering that hardens under sustained guard.", Category: "Defensive", Effect: "Guard damage reduced 20% while Steel Guard is active", CompatibleCharacters: list("Guardian", "Raider")},
		{ID: newID(), Name: "Marked Quarry", Description: "Arrows remember the wounds of marked prey.", Category: "Offensive", Effect: "+25% damage against marked enemies", CompatibleCharacters: list("Ironeye")},
		{ID: newID(), Name: "Residue Conduction", Description: "The catalyst stores elemental residue from nearby spells.", Category: "Elemental", Effect: "Every third spell costs no FP", CompatibleCharacters: list("Recluse", "Revenant")},
		{ID: newID(), Name: "Last Stand Rally", Description: "Desperation sharpens the wielder as allies fall.", Category: "Offensive", Effect: "+10% attack power per downed ally", CompatibleCharacters: list("Raider", "Executor", "Wylder")},
		{ID: newID(), Name: "Dawnlit Ward", Description: "A faint blessing that lingers from the last dawn.", Category: "Defensive", Effect: "First hit each night is reduced to 1 damage", CompatibleCharacters: list("Revenant", "Guardian", "Duchess")},
	}
}
