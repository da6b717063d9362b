package site

import "strconv"

type Hours struct {
	Days  string
	Short string
	Open  string
}

type Photo struct {
	ID  string
	Src string
	Alt string
}

// Info is the static copy rendered around the menu and the form.
type Info struct {
	Name       string
	Tagline    string
	Story      []string
	Stats      [][2]string
	Address    []string
	Phone      string
	Email      string
	Hours      []Hours
	Gallery    []Photo
	FooterNote string
}

var BellaVista = Info{
	Name:    "Bella Vista",
	Tagline: "Where culinary artistry meets warm hospitality in the heart of the city",
	Story: []string{
		"Founded in 2010, Bella Vista began as a dream to create a space where exceptional cuisine meets warm hospitality. Our passion for culinary excellence drives us to source the finest ingredients and craft memorable dining experiences.",
		"Led by Executive Chef Maria Rodriguez, our team combines traditional techniques with modern innovation, creating dishes that celebrate both flavor and artistry.",
	},
	Stats: [][2]string{
		{"13+", "Years of Excellence"},
		{"50k+", "Happy Guests"},
	},
	Address: []string{"123 Culinary Avenue", "Downtown District", "New York, NY 10001"},
	Phone:   "(555) 123-4567",
	Email:   "info@bellavista.com",
	Hours: []Hours{
		{Days: "Monday - Thursday", Short: "Mon-Thu", Open: "11:00 AM - 10:00 PM"},
		{Days: "Friday - Saturday", Short: "Fri-Sat", Open: "11:00 AM - 11:00 PM"},
		{Days: "Sunday", Short: "Sunday", Open: "10:00 AM - 9:00 PM"},
	},
	Gallery: []Photo{
		{ID: "food-spread", Src: "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=800", Alt: "Food spread"},
		{ID: "cafe-seating", Src: "https://images.unsplash.com/photo-1521017432531-fbd92d768814?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400", Alt: "Café seating"},
		{ID: "signature-cocktail", Src: "https://images.unsplash.com/photo-1551024506-0bccd828d307?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=800", Alt: "Signature cocktail"},
		{ID: "dessert-plating", Src: "https://images.unsplash.com/photo-1565958011703-44f9829ba187?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400", Alt: "Dessert plating"},
		{ID: "restaurant-exterior", Src: "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400", Alt: "Restaurant exterior"},
		{ID: "coffee-art", Src: "https://images.unsplash.com/photo-1509042239860-f550ce710b93?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400", Alt: "Coffee art"},
	},
	FooterNote: "Where culinary artistry meets warm hospitality. Join us for an unforgettable dining experience in the heart of the city.",
}

type partyOption struct {
	Value string
	Label string
}

// partySizes mirrors the select on the form: 1..10 and "10+".
func partySizes() []partyOption {
	opts := make([]partyOption, 0, 11)
	for n := 1; n <= 10; n++ {
		label := strconv.Itoa(n) + " people"
		if n == 1 {
			label = "1 person"
		}
		opts = append(opts, partyOption{Value: strconv.Itoa(n), Label: label})
	}
	return append(opts, partyOption{Value: "10+", Label: "10+ people"})
}
