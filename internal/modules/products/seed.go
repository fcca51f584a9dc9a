package products

// DefaultImage is the placeholder card image used until a product gets its
// own upload. Inlined as a data URL: the export path loads the flyer document
// from a string, so there is no origin to resolve a served path against.
const DefaultImage = "data:image/png;base64," +
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

// baseDrafts are the demo products the seeded campaign cycles through.
var baseDrafts = []Draft{
	{Name: "Çaykur", Desc: "Rize Çayı", WeightValue: "500", WeightUnit: "gr",
		PriceMain: "2", PriceCents: "99", Theme: ThemeYellow, Color: ColorGold, Image: DefaultImage},
	{Name: "Mahmut", Desc: "Basmati Pirinç", WeightValue: "5", WeightUnit: "kg",
		PriceMain: "9", PriceCents: "99", Theme: ThemeRed, Color: ColorRed, Image: DefaultImage},
	{Name: "Eker", Desc: "Kaşar Peyniri", WeightValue: "200", WeightUnit: "gr",
		PriceMain: "2", PriceCents: "49", Theme: ThemePink, Color: ColorRed, Image: DefaultImage},
	{Name: "Koç", Desc: "Parmak Sucuk", WeightValue: "450", WeightUnit: "gr",
		PriceMain: "5", PriceCents: "49", Theme: ThemeGreen, Color: ColorGreen, Image: DefaultImage},
	{Name: "Efe Paşa", Desc: "Dilimli Salam", WeightValue: "200", WeightUnit: "gr",
		PriceMain: "1", PriceCents: "89", Theme: ThemeOrange, Color: ColorDark, Image: DefaultImage},
}

// SeedDrafts returns count demo drafts, cycling the base set.
func SeedDrafts(count int) []Draft {
	out := make([]Draft, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, baseDrafts[i%len(baseDrafts)])
	}
	return out
}
