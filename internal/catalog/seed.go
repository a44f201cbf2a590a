package catalog

// seedServices is the static service catalog loaded at process start.
func seedServices() []Service {
	return []Service{
		{
			ID:          "s1",
			Name:        "Precision Haircut",
			Description: "Expert consultation followed by a precision cut and style.",
			PriceCents:  4500,
			DurationMin: 45,
			ImageURL:    "https://picsum.photos/id/1027/400/300",
			Category:    CategoryHair,
		},
		{
			ID:          "s2",
			Name:        "Beard Sculpting",
			Description: "Hot towel treatment, trim, and razor line-up.",
			PriceCents:  3000,
			DurationMin: 30,
			ImageURL:    "https://picsum.photos/id/1005/400/300",
			Category:    CategoryBeard,
		},
		{
			ID:          "s3",
			Name:        "Rejuvenating Facial",
			Description: "Deep cleanse, exfoliation, and hydration mask.",
			PriceCents:  7500,
			DurationMin: 60,
			ImageURL:    "https://picsum.photos/id/1062/400/300",
			Category:    CategorySpa,
		},
		{
			ID:          "s4",
			Name:        "Luxury Manicure",
			Description: "Nail shaping, cuticle care, and hand massage.",
			PriceCents:  3500,
			DurationMin: 40,
			ImageURL:    "https://picsum.photos/id/1070/400/300",
			Category:    CategoryNails,
		},
	}
}

// seedStylists is the static staff roster loaded at process start.
func seedStylists() []Stylist {
	return []Stylist{
		{
			ID:          "st1",
			Name:        "Elena Rostova",
			Role:        "Senior Stylist",
			Rating:      4.9,
			Specialties: []string{"Precision Cuts", "Coloring"},
			ImageURL:    "https://picsum.photos/id/64/150/150",
		},
		{
			ID:          "st2",
			Name:        "Marcus Chen",
			Role:        "Barber Specialist",
			Rating:      4.8,
			Specialties: []string{"Fades", "Beard Sculpting"},
			ImageURL:    "https://picsum.photos/id/91/150/150",
		},
		{
			ID:          "st3",
			Name:        "Sarah Jenkins",
			Role:        "Esthetician",
			Rating:      5.0,
			Specialties: []string{"Facials", "Skincare"},
			ImageURL:    "https://picsum.photos/id/338/150/150",
		},
	}
}

// seedTimeSlots is the fixed ordered list of bookable time slots. There is
// no availability tracking; every slot is always presentable and bookable.
func seedTimeSlots() []string {
	return []string{
		"09:00 AM", "10:00 AM", "11:00 AM", "01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM",
	}
}
