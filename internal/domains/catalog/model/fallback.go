package model

// FallbackRooms is shown on the rooms page whenever the backend has nothing to offer.
func FallbackRooms() []Room {
	return []Room{
		{
			ID:                "fallback-deluxe-1",
			Name:              "Deluxe Room 1",
			Slug:              "deluxe-room-1",
			Type:              "deluxe",
			Description:       "Comfortable deluxe room perfect for couples seeking a cozy retreat in Kericho. Features modern amenities, a double bed, and an en-suite bathroom with hot shower.",
			Capacity:          2,
			PricePerNight:     5000,
			BreakfastIncluded: true,
			IsActive:          true,
			Amenities:         []string{"Double bed", "En-suite bathroom", "Hot shower", "WiFi", "Garden view"},
			Images:            []string{},
		},
		{
			ID:                "fallback-deluxe-2",
			Name:              "Deluxe Room 2",
			Slug:              "deluxe-room-2",
			Type:              "deluxe",
			Description:       "Well-appointed deluxe room offering excellent value and comfort for your Kericho stay. Perfect for business travelers or couples exploring the tea country.",
			Capacity:          2,
			PricePerNight:     5000,
			BreakfastIncluded: true,
			IsActive:          true,
			Amenities:         []string{"Double bed", "En-suite bathroom", "Hot shower", "WiFi", "Work desk"},
			Images:            []string{},
		},
		{
			ID:                "fallback-deluxe-3",
			Name:              "Deluxe Room 3",
			Slug:              "deluxe-room-3",
			Type:              "deluxe",
			Description:       "Inviting deluxe room designed for maximum comfort and relaxation with modern conveniences and serene garden ambiance.",
			Capacity:          2,
			PricePerNight:     5000,
			BreakfastIncluded: true,
			IsActive:          true,
			Amenities:         []string{"Double bed", "En-suite bathroom", "Hot shower", "WiFi", "Wardrobe"},
			Images:            []string{},
		},
		{
			ID:                "fallback-double",
			Name:              "Double Room",
			Slug:              "double-room",
			Type:              "double",
			Description:       "Spacious double room ideal for couples or small families seeking extra comfort, with a modern en-suite bathroom and ample storage.",
			Capacity:          2,
			PricePerNight:     6000,
			BreakfastIncluded: true,
			IsActive:          true,
			Amenities:         []string{"Large double bed", "En-suite bathroom", "Hot shower", "WiFi", "Large wardrobe"},
			Images:            []string{},
		},
		{
			ID:                "fallback-executive-1",
			Name:              "Executive Room 1",
			Slug:              "executive-room-1",
			Type:              "executive",
			Description:       "Premium executive room offering superior comfort and style with premium bedding, DSTV, and balcony garden views.",
			Capacity:          2,
			PricePerNight:     6000,
			BreakfastIncluded: true,
			IsActive:          true,
			Amenities:         []string{"King-size bed", "Premium bedding", "WiFi", "TV with DSTV", "Private balcony"},
			Images:            []string{},
		},
		{
			ID:                "fallback-executive-2",
			Name:              "Executive Room 2",
			Slug:              "executive-room-2",
			Type:              "executive",
			Description:       "Sophisticated executive room designed for comfort and productivity, ideal for business stays or romantic getaways.",
			Capacity:          2,
			PricePerNight:     6000,
			BreakfastIncluded: true,
			IsActive:          true,
			Amenities:         []string{"King-size bed", "WiFi", "TV with DSTV", "Private balcony", "Executive work desk"},
			Images:            []string{},
		},
		{
			ID:                "fallback-cottage",
			Name:              "Garden Cottage",
			Slug:              "garden-cottage",
			Type:              "cottage",
			Description:       "Exclusive standalone cottage with ultimate privacy, separate living area, kitchenette, private patio, and lush garden surroundings.",
			Capacity:          3,
			PricePerNight:     7000,
			BreakfastIncluded: true,
			IsActive:          true,
			Amenities:         []string{"Queen-size bed", "Separate living area", "Kitchenette", "Mini fridge", "Private patio"},
			Images:            []string{},
		},
	}
}

// FallbackFeaturedRooms are the home page room cards.
func FallbackFeaturedRooms() []Room {
	return []Room{
		{
			ID:                "fallback-standard-double",
			Name:              "Standard Double",
			Slug:              "standard-double",
			Type:              "standard",
			Description:       "Comfortable room with double bed, perfect for couples or solo travelers.",
			Capacity:          2,
			PricePerNight:     5500,
			BreakfastIncluded: true,
			IsFeatured:        true,
			IsActive:          true,
			Amenities:         []string{"Double Bed", "En-suite", "Breakfast"},
			Images:            []string{},
		},
		{
			ID:                "fallback-premier",
			Name:              "Premier Room",
			Slug:              "premier-room",
			Type:              "premier",
			Description:       "Spacious premier room with enhanced amenities and beautiful garden views.",
			Capacity:          2,
			PricePerNight:     6500,
			BreakfastIncluded: true,
			IsFeatured:        true,
			IsActive:          true,
			Amenities:         []string{"King Bed", "En-suite", "Breakfast"},
			Images:            []string{},
		},
		{
			ID:                "fallback-garden-cottage",
			Name:              "Garden Cottage",
			Slug:              "garden-cottage",
			Type:              "cottage",
			Description:       "Secluded standalone cottage surrounded by our beautiful gardens.",
			Capacity:          3,
			PricePerNight:     6500,
			BreakfastIncluded: true,
			IsFeatured:        true,
			IsActive:          true,
			Amenities:         []string{"Standalone", "En-suite", "Breakfast"},
			Images:            []string{},
		},
	}
}

func FallbackPackages() []Package {
	return []Package{
		{
			Name:          "Home Away From Home Package",
			Tagline:       "One estate. All yours.",
			Description:   "Reserve the entire property exclusively for your group: all 7 rooms, the gardens, and complete privacy. Perfect for family reunions, group getaways, corporate retreats, and wedding parties.",
			PricePerNight: 40000,
			OriginalPrice: 42500,
			Savings:       2500,
			Capacity:      20,
			RoomsIncluded: []string{
				"3x Standard Double Rooms",
				"2x Premier Rooms",
				"1x Garden Cottage",
				"1x Family Room",
			},
			Benefits: []string{
				"Complete privacy, no other guests",
				"Breakfast for every guest, every morning",
				"Full garden & grounds access",
				"Free parking included",
				"Ideal for reunions, retreats & wedding parties",
			},
		},
	}
}

func DefaultGallery() Gallery {
	return Gallery{
		Slides: []Slide{
			{Src: "/images/large_aerial_view.PNG", Alt: "Aerial view of Wima Serenity Gardens"},
			{Src: "/images/house_picture_from_garden.png", Alt: "Main house viewed from the gardens"},
			{Src: "/images/full_garden_pic.webp", Alt: "Lush flower gardens in full bloom"},
			{Src: "/images/golden_hour_garden.jpeg", Alt: "Gardens bathed in golden hour light"},
			{Src: "/images/balcony_pathway.webp", Alt: "Pathway winding through the grounds"},
			{Src: "/images/front_right_garden.webp", Alt: "Front garden landscaping"},
			{Src: "/images/right-side_garden_from_bottom.webp", Alt: "Side garden and manicured lawns"},
			{Src: "/images/house_pic_from_out_with_table.jpeg", Alt: "Outdoor dining on the grounds"},
		},
		IntervalMillis: SlideIntervalMillis,
		PauseOnHover:   true,
	}
}
