package catalog

import "narie-storefront/internal/domain"

// entries is the authored catalog. Prices per currency are set by hand, not
// derived by conversion.
var entries = []entry{
	{
		ID: "1",
		EN: localized{
			Name:        "Spring Bud",
			Description: "The touch of morning dew on young buds. A promise of new beginnings.",
			ScentNotes:  []string{"Grapefruit", "Green Tea", "Morning Dew"},
		},
		VI: localized{
			Name:        "Mầm Xuân",
			Description: "Cảm giác sương sớm chạm lên chồi non. Tươi mới và tinh khôi.",
			ScentNotes:  []string{"Bưởi Hồng", "Trà Xanh", "Sương Mai"},
		},
		PriceUSDCents: 3500,
		PriceVND:      850000,
		Image:         "https://images.unsplash.com/photo-1612198188060-c7c2a6967efd?q=80&w=1500&auto=format&fit=crop",
		Category:      domain.CategorySignature,
		ColorTheme:    "bg-brand-olive",
	},
	{
		ID: "2",
		EN: localized{
			Name:        "Summer Breeze",
			Description: "Cool sea breeze touching the skin. Salt air and driftwood.",
			ScentNotes:  []string{"Sea Salt", "Driftwood", "Sage"},
		},
		VI: localized{
			Name:        "Gió Hạ",
			Description: "Gió biển mát lành chạm vào da thịt. Muối biển và gỗ trôi.",
			ScentNotes:  []string{"Muối Biển", "Gỗ Trôi", "Xô Thơm"},
		},
		PriceUSDCents: 3500,
		PriceVND:      850000,
		Image:         "https://images.unsplash.com/photo-1603006905003-be475563bc59?q=80&w=1500&auto=format&fit=crop",
		Category:      domain.CategorySignature,
		ColorTheme:    "bg-brand-mineral",
	},
	{
		ID: "3",
		EN: localized{
			Name:        "Autumn Sun",
			Description: "Warm sunlight through turning leaves. Spicy and grounding.",
			ScentNotes:  []string{"Cardamom", "Cedarwood", "Amber"},
		},
		VI: localized{
			Name:        "Nắng Thu",
			Description: "Nắng ấm xuyên qua kẽ lá vàng. Trầm ấm và bình yên.",
			ScentNotes:  []string{"Bạch Đậu Khấu", "Gỗ Tuyết Tùng", "Hổ Phách"},
		},
		PriceUSDCents: 3500,
		PriceVND:      850000,
		Image:         "https://images.unsplash.com/photo-1570823635306-250abb06d4b3?q=80&w=1500&auto=format&fit=crop",
		Category:      domain.CategorySignature,
		ColorTheme:    "bg-brand-terracotta",
	},
	{
		ID: "4",
		EN: localized{
			Name:        "Winter Hearth",
			Description: "Warmth from a kitchen corner. Comforting firewood and vanilla.",
			ScentNotes:  []string{"Firewood", "Vanilla", "Clove"},
		},
		VI: localized{
			Name:        "Lửa Đông",
			Description: "Hơi ấm từ góc bếp nhỏ. Củi khô và vani ngọt ngào.",
			ScentNotes:  []string{"Củi Khô", "Vani", "Đinh Hương"},
		},
		PriceUSDCents: 3500,
		PriceVND:      850000,
		Image:         "https://images.unsplash.com/photo-1608755717536-faa6a36e817e?q=80&w=1500&auto=format&fit=crop",
		Category:      domain.CategorySignature,
		ColorTheme:    "bg-brand-charcoal",
	},
	{
		ID: "5",
		EN: localized{
			Name:        "Moonflower",
			Description: "A secret garden blooming under the moonlight. Mystical and floral.",
			ScentNotes:  []string{"Night Jasmine", "Tuberose", "White Musk"},
		},
		VI: localized{
			Name:        "Hoa Trăng",
			Description: "Khu vườn bí mật nở rộ dưới ánh trăng. Huyền bí và quyến rũ.",
			ScentNotes:  []string{"Nhài Đêm", "Hoa Huệ", "Xạ Hương"},
		},
		PriceUSDCents: 3800,
		PriceVND:      950000,
		Image:         "https://images.unsplash.com/photo-1570700005880-46d6385c8085?q=80&w=1500&auto=format&fit=crop",
		Category:      domain.CategoryLimited,
		ColorTheme:    "bg-indigo-900",
	},
	{
		ID: "6",
		EN: localized{
			Name:        "Silent Rain",
			Description: "The peaceful sound of rain hitting stone. Clean, fresh, and restorative.",
			ScentNotes:  []string{"Petrichor", "Violet Leaf", "Wet Stone"},
		},
		VI: localized{
			Name:        "Mưa Tĩnh Lặng",
			Description: "Tiếng mưa rơi êm đềm trên phiến đá. Trong lành và hồi phục.",
			ScentNotes:  []string{"Hương Đất", "Lá Violet", "Đá Ẩm"},
		},
		PriceUSDCents: 3800,
		PriceVND:      950000,
		Image:         "https://images.unsplash.com/photo-1515377905703-c4788e51af15?q=80&w=1500&auto=format&fit=crop",
		Category:      domain.CategoryLimited,
		ColorTheme:    "bg-slate-600",
	},
	{
		ID: "7",
		EN: localized{
			Name:        "Velvet Night",
			Description: "Deep relaxation in the late hours. Smooth, rich, and calming.",
			ScentNotes:  []string{"Black Amber", "Lavender", "Tonka Bean"},
		},
		VI: localized{
			Name:        "Đêm Nhung",
			Description: "Sự thư giãn sâu lắng những giờ khuya. Êm dịu và ấm áp.",
			ScentNotes:  []string{"Hổ Phách Đen", "Oải Hương", "Đậu Tonka"},
		},
		PriceUSDCents: 3800,
		PriceVND:      950000,
		Image:         "https://images.unsplash.com/photo-1595461135849-bf08dc3a3303?q=80&w=1500&auto=format&fit=crop",
		Category:      domain.CategoryLimited,
		ColorTheme:    "bg-purple-900",
	},
	{
		ID: "11",
		EN: localized{
			Name:        "Calm Diffuser Oil",
			Description: "Pure essential oil blend for deep sleep and relaxation.",
			ScentNotes:  []string{"French Lavender", "Chamomile", "Bergamot"},
		},
		VI: localized{
			Name:        "Tinh Dầu Tĩnh Tâm",
			Description: "Hỗn hợp tinh dầu nguyên chất cho giấc ngủ sâu.",
			ScentNotes:  []string{"Oải Hương", "Cúc La Mã", "Cam Bergamot"},
		},
		PriceUSDCents: 2200,
		PriceVND:      550000,
		Image:         "https://images.unsplash.com/photo-1608571423902-eed4a5ad8108?q=80&w=1500&auto=format&fit=crop",
		Category:      domain.CategoryEssentialOil,
		ColorTheme:    "bg-stone-400",
	},
	{
		ID: "12",
		EN: localized{
			Name:        "Awaken Diffuser Oil",
			Description: "Energizing blend to start your morning with clarity.",
			ScentNotes:  []string{"Lemongrass", "Ginger", "Lime"},
		},
		VI: localized{
			Name:        "Tinh Dầu Thức Tỉnh",
			Description: "Hỗn hợp năng lượng để khởi đầu ngày mới tỉnh táo.",
			ScentNotes:  []string{"Sả Chanh", "Gừng", "Chanh Tươi"},
		},
		PriceUSDCents: 2200,
		PriceVND:      550000,
		Image:         "https://images.unsplash.com/photo-1595981267035-7b04ca84a82d?q=80&w=1500&auto=format&fit=crop",
		Category:      domain.CategoryEssentialOil,
		ColorTheme:    "bg-amber-400",
	},
	{
		ID: "8",
		EN: localized{
			Name:        "Narie Safety Matches",
			Description: "Long safety matches in a reusable glass apothecary bottle with striker pad.",
			ScentNotes:  []string{"Utility", "Design", "Safety"},
		},
		VI: localized{
			Name:        "Diêm Thơm Narie",
			Description: "Diêm dài chuyên dụng trong lọ thủy tinh tái sử dụng, kèm giấy đánh lửa.",
			ScentNotes:  []string{"Tiện Dụng", "Thiết Kế", "An Toàn"},
		},
		PriceUSDCents: 1200,
		PriceVND:      250000,
		Image:         "https://images.unsplash.com/photo-1552590523-3d1b8b0b759e?q=80&w=1500&auto=format&fit=crop",
		Category:      domain.CategoryAccessory,
		ColorTheme:    "bg-stone-500",
	},
	{
		ID: "9",
		EN: localized{
			Name:        "Matte Wick Trimmer",
			Description: "Essential tool for candle care. Ensures a clean, smoke-free burn every time.",
			ScentNotes:  []string{"Steel", "Matte Black", "Care"},
		},
		VI: localized{
			Name:        "Kéo Cắt Bấc",
			Description: "Dụng cụ thiết yếu để chăm sóc nến, giúp ngọn lửa cháy sạch và không khói.",
			ScentNotes:  []string{"Thép Đen", "Bền Bỉ", "Chăm Sóc"},
		},
		PriceUSDCents: 1800,
		PriceVND:      450000,
		Image:         "https://images.unsplash.com/photo-1620642542614-10683461d64a?q=80&w=1500&auto=format&fit=crop",
		Category:      domain.CategoryAccessory,
		ColorTheme:    "bg-stone-800",
	},
	{
		ID: "10",
		EN: localized{
			Name:        "Signature Gift Box",
			Description: "Luxurious packaging for the perfect gift. Includes ribbon and handwritten note.",
			ScentNotes:  []string{"Packaging", "Gift", "Detail"},
		},
		VI: localized{
			Name:        "Hộp Quà Signature",
			Description: "Gói ghém tỉ mỉ với hộp cứng, nơ lụa và thiệp viết tay. Hoàn hảo để tặng.",
			ScentNotes:  []string{"Đóng Gói", "Quà Tặng", "Tinh Tế"},
		},
		PriceUSDCents: 800,
		PriceVND:      150000,
		Image:         "https://images.unsplash.com/photo-1549465220-1a8b9238cd48?q=80&w=1500&auto=format&fit=crop",
		Category:      domain.CategoryAccessory,
		ColorTheme:    "bg-stone-300",
	},
}
