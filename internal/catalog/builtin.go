package catalog

func compost(label string) ItemTemplate {
	return ItemTemplate{Label: label, Category: Correct}
}

func trash(label, reason string) ItemTemplate {
	return ItemTemplate{Label: label, Category: Incorrect, Reason: reason}
}

func concat(pools ...[]ItemTemplate) []ItemTemplate {
	var out []ItemTemplate
	for _, p := range pools {
		out = append(out, p...)
	}
	return out
}

var easyCompost = []ItemTemplate{
	compost("🍌 Banana Peel"),
	compost("🍎 Apple Core"),
	compost("🥬 Lettuce"),
	compost("🥚 Eggshell"),
	compost("☕ Coffee Grounds"),
	compost("🍂 Leaves"),
	compost("🍞 Bread"),
}

var easyTrash = []ItemTemplate{
	trash("🥤 Plastic Cup", "Plastic doesn't break down in compost."),
	trash("🧴 Bottle", "Plastic bottles don't compost."),
	trash("📦 Styrofoam", "Styrofoam is petroleum-based, never compost."),
	trash("🪫 Battery", "Hazardous, must go to e-waste."),
	trash("🧃 Pouch", "Mixed materials don't compost."),
	trash("🧻 Wrapper", "Most wrappers are plastic or foil-lined."),
}

var confusingTrash = []ItemTemplate{
	trash("☕ To-Go Coffee Cup", "Usually plastic-lined."),
	trash("🍕 Greasy Pizza Box", "Rules vary; grease causes processing issues."),
	trash("🍴 Compostable Fork", "Often needs industrial composting."),
	trash("🛍️ Biodegradable Bag", "Biodegradable is not the same as compostable."),
	trash("🍎 Fruit Sticker", "Usually plastic or vinyl, remove it."),
	trash("🫖 Tea Bag (plastic)", "Some contain plastic fibers."),
	trash("🍽️ Coated Paper Plate", "Coatings can contaminate compost."),
}

var mediumCompost = concat(easyCompost, []ItemTemplate{
	compost("🥕 Carrot Peels"),
	compost("🧅 Onion Skins"),
	compost("🌽 Corn Husks"),
	compost("🍃 Yard Clippings"),
})

var hardCompost = concat(mediumCompost, []ItemTemplate{
	compost("🍚 Rice (small)"),
	compost("🍝 Pasta (small)"),
	compost("🌰 Nut Shells"),
	compost("🍄 Mushroom Stems"),
})

// BuiltinProfiles returns the stock easy, medium and hard profiles.
func BuiltinProfiles() []Profile {
	return []Profile{
		{
			Key:           "easy",
			Name:          "Easy",
			CorrectPool:   easyCompost,
			IncorrectPool: easyTrash,
			RoundSize:     10,
		},
		{
			Key:                       "medium",
			Name:                      "Medium",
			CorrectPool:               mediumCompost,
			IncorrectPool:             concat(easyTrash, confusingTrash),
			VisuallyIndistinguishable: true,
			RoundSize:                 13,
		},
		{
			Key:                       "hard",
			Name:                      "Hard",
			CorrectPool:               hardCompost,
			IncorrectPool:             concat(easyTrash, confusingTrash),
			VisuallyIndistinguishable: true,
			RoundSize:                 15,
		},
	}
}

// Builtin returns the stock catalog.
func Builtin() *Catalog {
	return MustNew(BuiltinProfiles()...)
}
