package models

// CategoryAll "tüm menü" sanal kategorisinin rezerve id'si.
// Yönetim listelerinde gösterilmez, silinemez.
const CategoryAll = "hepsi"

type Category struct {
	ID     string        `json:"id"`
	Labels LocalizedText `json:"labels"`
	Icon   string        `json:"icon"`
}
