// Package icons kategori ikonlarının kapalı kümesini tanımlar.
// İkon isimleri açık uçlu bir string tablosu değildir; bilinmeyen
// her isim varsayılan ikona düşer, asla hata üretmez.
package icons

type Icon string

const (
	UtensilsCrossed Icon = "UtensilsCrossed"
	Leaf            Icon = "Leaf"
	Fish            Icon = "Fish"
	Salad           Icon = "Salad"
	Soup            Icon = "Soup"
	Beef            Icon = "Beef"
	Coffee          Icon = "Coffee"
	IceCream        Icon = "IceCream"
	Wine            Icon = "Wine"
	Sandwich        Icon = "Sandwich"
)

// Default "tüm menü" dahil eşleşmeyen her kategori için kullanılır.
const Default = UtensilsCrossed

// Resolve sembolik ismi desteklenen ikona çözer; tanınmayan isimler
// Default'a düşer.
func Resolve(name string) Icon {
	switch Icon(name) {
	case UtensilsCrossed, Leaf, Fish, Salad, Soup, Beef, Coffee, IceCream, Wine, Sandwich:
		return Icon(name)
	}
	return Default
}
