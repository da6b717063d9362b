package menu

const (
	CategoryAppetizers = "appetizers"
	CategoryMains      = "mains"
	CategoryDesserts   = "desserts"
	CategoryBeverages  = "beverages"
)

// Item is one dish or drink on the public menu. Price stays a decimal
// string ("18.00") so it is never rounded on the way through.
type Item struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Price       string   `json:"price" yaml:"price"`
	Category    string   `json:"category" yaml:"category"`
	Image       string   `json:"image" yaml:"image"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// Badge is the label shown on the menu card: the first tag, if any.
func (i Item) Badge() string {
	if len(i.Tags) == 0 {
		return ""
	}
	return i.Tags[0]
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		it.Tags = append([]string{}, it.Tags...)
		out[i] = it
	}
	return out
}
