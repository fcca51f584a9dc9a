package products

import "time"

// Theme is the card background theme class.
type Theme string

// Color is the card text color class.
type Color string

const (
	ThemeYellow Theme = "theme-yellow"
	ThemeRed    Theme = "theme-red"
	ThemePink   Theme = "theme-pink"
	ThemeGreen  Theme = "theme-green"
	ThemeOrange Theme = "theme-orange"
	ThemeBlue   Theme = "theme-blue"

	ColorGold  Color = "color-gold"
	ColorRed   Color = "color-red"
	ColorGreen Color = "color-green"
	ColorDark  Color = "color-dark"
	ColorBlue  Color = "color-blue"
)

// Themes lists the selectable card themes in form order.
func Themes() []Theme {
	return []Theme{ThemeYellow, ThemeRed, ThemePink, ThemeGreen, ThemeOrange, ThemeBlue}
}

// Colors lists the selectable text colors in form order.
func Colors() []Color {
	return []Color{ColorGold, ColorRed, ColorGreen, ColorDark, ColorBlue}
}

// WeightUnits lists the selectable weight units.
func WeightUnits() []string { return []string{"gr", "kg", "ml", "lt"} }

// Product is one card on the flyer. Price and weight are kept as the literal
// strings the user typed; no numeric parsing or validation happens anywhere.
type Product struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"size:255" json:"name"`
	Desc        string `gorm:"size:255" json:"desc"`
	WeightValue string `gorm:"size:32" json:"weightValue"`
	WeightUnit  string `gorm:"size:8" json:"weightUnit"`
	PriceMain   string `gorm:"size:16" json:"priceMain"`
	PriceCents  string `gorm:"size:8" json:"priceCents"`
	Theme       Theme  `gorm:"size:32" json:"theme"`
	Color       Color  `gorm:"size:32" json:"color"`
	// Image is a public URL or an inline data URL; ImageKey is the storage
	// key when the image lives in the bucket.
	Image    string `gorm:"type:mediumtext" json:"image"`
	ImageKey string `gorm:"size:128" json:"imageKey,omitempty"`
	Position int    `json:"position"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Field names one editable product field; edits flow one field at a time.
type Field string

const (
	FieldName        Field = "name"
	FieldDesc        Field = "desc"
	FieldWeightValue Field = "weightValue"
	FieldWeightUnit  Field = "weightUnit"
	FieldPriceMain   Field = "priceMain"
	FieldPriceCents  Field = "priceCents"
	FieldTheme       Field = "theme"
	FieldColor       Field = "color"
	FieldImage       Field = "image"
)

// Valid reports whether f names an editable field.
func (f Field) Valid() bool {
	switch f {
	case FieldName, FieldDesc, FieldWeightValue, FieldWeightUnit,
		FieldPriceMain, FieldPriceCents, FieldTheme, FieldColor, FieldImage:
		return true
	}
	return false
}

// Apply sets the named field, leaving everything else untouched. Unknown
// fields are ignored. Reports whether the field was recognized.
func (p *Product) Apply(f Field, value string) bool {
	switch f {
	case FieldName:
		p.Name = value
	case FieldDesc:
		p.Desc = value
	case FieldWeightValue:
		p.WeightValue = value
	case FieldWeightUnit:
		p.WeightUnit = value
	case FieldPriceMain:
		p.PriceMain = value
	case FieldPriceCents:
		p.PriceCents = value
	case FieldTheme:
		p.Theme = Theme(value)
	case FieldColor:
		p.Color = Color(value)
	case FieldImage:
		p.Image = value
	default:
		return false
	}
	return true
}

// Get reads the named field as a string. Unknown fields yield "".
func (p Product) Get(f Field) string {
	switch f {
	case FieldName:
		return p.Name
	case FieldDesc:
		return p.Desc
	case FieldWeightValue:
		return p.WeightValue
	case FieldWeightUnit:
		return p.WeightUnit
	case FieldPriceMain:
		return p.PriceMain
	case FieldPriceCents:
		return p.PriceCents
	case FieldTheme:
		return string(p.Theme)
	case FieldColor:
		return string(p.Color)
	case FieldImage:
		return p.Image
	}
	return ""
}

// Draft is a product without identity or ordering; the store assigns both.
type Draft struct {
	Name        string `json:"name"`
	Desc        string `json:"desc"`
	WeightValue string `json:"weightValue"`
	WeightUnit  string `json:"weightUnit"`
	PriceMain   string `json:"priceMain"`
	PriceCents  string `json:"priceCents"`
	Theme       Theme  `json:"theme"`
	Color       Color  `json:"color"`
	Image       string `json:"image"`
}

// EmptyDraft is the form-buffer default.
func EmptyDraft() Draft {
	return Draft{
		WeightUnit: "gr",
		Theme:      ThemeYellow,
		Color:      ColorGold,
		Image:      DefaultImage,
	}
}

// DraftOf copies a product's editable fields into a draft.
func DraftOf(p Product) Draft {
	return Draft{
		Name:        p.Name,
		Desc:        p.Desc,
		WeightValue: p.WeightValue,
		WeightUnit:  p.WeightUnit,
		PriceMain:   p.PriceMain,
		PriceCents:  p.PriceCents,
		Theme:       p.Theme,
		Color:       p.Color,
		Image:       p.Image,
	}
}
