package models

// LocalizedText tr/en çifti. Eksik dil boş string olarak okunur,
// hiçbir zaman nil dereference olmaz.
type LocalizedText struct {
	TR string `json:"tr"`
	EN string `json:"en"`
}

type Language string

const (
	LangTR Language = "tr"
	LangEN Language = "en"
)

// In verilen dildeki metni döndürür, eksikse diğer dile düşer.
func (t LocalizedText) In(lang Language) string {
	if lang == LangEN {
		if t.EN != "" {
			return t.EN
		}
		return t.TR
	}
	if t.TR != "" {
		return t.TR
	}
	return t.EN
}

type MenuItem struct {
	ID          string        `json:"id"` // boş id = henüz kaydedilmemiş
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Price       float64       `json:"price"`
	Image       string        `json:"image"` // URL veya inline data: payload
	Category    string        `json:"category"`
	IsAvailable bool          `json:"isAvailable"`
	IsPopular   bool          `json:"isPopular,omitempty"`
}
