package i18n

// Resources は 言語 → 名前空間 → キー → 文言。起動時に1回だけ読む静的な表。
var Resources = map[string]map[Namespace]map[string]string{
	"en": {
		NSHeader: {
			"brand":         "ShopEase",
			"home":          "Home",
			"products":      "Products",
			"categories":    "Categories",
			"cart":          "Cart",
			"wishlist":      "Wishlist",
			"search":        "Search products...",
			"login":         "Sign in",
			"logout":        "Sign out",
			"account":       "My account",
			"language":      "Language",
			"menu":          "Menu",
			"promoShipping": "Free shipping on orders over $50",
		},
		NSFooter: {
			"quickLinks":      "Quick Links",
			"customerService": "Customer Service",
			"stayUpdated":     "Stay Updated",
			"newsletter":      "Subscribe to get special offers and new arrivals.",
			"subscribe":       "Subscribe",
			"support":         "24/7 Support",
			"returns":         "30-Day Returns",
			"secure":          "Secure Shopping",
			"freeShipping":    "Free Shipping Over $50",
			"weAccept":        "We Accept:",
			"copyright":       "All rights reserved.",
		},
		NSHome: {
			"heroTitle":          "Discover Amazing Products",
			"heroSubtitle":       "Check out the latest products",
			"shopNow":            "Shop now",
			"featuredProducts":   "Featured Products",
			"featuredCategories": "Featured Categories",
			"newArrivals":        "New Arrivals",
			"saleTitle":          "Summer Sale",
			"saleSubtitle":       "Up to 50% off on selected items",
			"viewAll":            "View all",
		},
		NSProducts: {
			"title":        "Products",
			"filters":      "Filters",
			"category":     "Category",
			"priceRange":   "Price Range",
			"rating":       "Customer Rating",
			"availability": "Availability",
			"brand":        "Brand",
			"inStock":      "In Stock",
			"outOfStock":   "Out of Stock",
			"sortBy":       "Sort by",
			"sortName":     "Name",
			"sortPriceAsc": "Price: Low to High",
			"sortPriceDsc": "Price: High to Low",
			"sortRating":   "Rating",
			"sortNewest":   "Newest",
			"noResults":    "No products found",
			"addToCart":    "Add to cart",
			"addToWish":    "Add to wishlist",
			"description":  "Description",
			"reviews":      "Customer Reviews",
			"related":      "You might also like",
			"sale":         "Sale",
			"clearFilters": "Clear filters",
		},
		NSCart: {
			"title":          "Shopping Cart",
			"empty":          "Your cart is empty",
			"emptyHint":      "Add some products to get started",
			"quantity":       "Quantity",
			"remove":         "Remove",
			"subtotal":       "Subtotal",
			"shipping":       "Shipping",
			"tax":            "Tax",
			"total":          "Total",
			"free":           "Free",
			"checkout":       "Checkout",
			"orderSummary":   "Order Summary",
			"orderReview":    "Order Review",
			"shippingAddr":   "Shipping Address",
			"paymentMethod":  "Payment Method",
			"placeOrder":     "Place order",
			"continue":       "Continue shopping",
			"wishlistTitle":  "My Wishlist",
			"wishlistEmpty":  "Save items you love for later",
			"moveToCart":     "Move to cart",
			"orderPlaced":    "Your order has been placed",
			"clearCart":      "Clear cart",
			"itemsInCart":    "Items",
		},
		NSCommon: {
			"loading":     "Loading...",
			"error":       "Something went wrong",
			"retry":       "Try again",
			"notFound":    "Page not found",
			"goHome":      "Go back home",
			"save":        "Save",
			"cancel":      "Cancel",
			"close":       "Close",
			"yes":         "Yes",
			"no":          "No",
			"added":       "Added to cart",
			"removed":     "Removed",
			"wishAdded":   "Added to wishlist",
			"wishRemoved": "Removed from wishlist",
		},
	},
	"my": {
		NSHeader: {
			"brand":         "ShopEase",
			"home":          "Laman Utama",
			"products":      "Produk",
			"categories":    "Kategori",
			"cart":          "Troli",
			"wishlist":      "Senarai Hajat",
			"search":        "Cari produk...",
			"login":         "Log masuk",
			"logout":        "Log keluar",
			"account":       "Akaun saya",
			"language":      "Bahasa",
			"menu":          "Menu",
			"promoShipping": "Penghantaran percuma untuk pesanan melebihi $50",
		},
		NSFooter: {
			"quickLinks":      "Pautan Pantas",
			"customerService": "Khidmat Pelanggan",
			"stayUpdated":     "Kekal Dikemas Kini",
			"newsletter":      "Langgan untuk tawaran istimewa dan produk terbaru.",
			"subscribe":       "Langgan",
			"support":         "Sokongan 24/7",
			"returns":         "Pemulangan 30 Hari",
			"secure":          "Membeli-belah Selamat",
			"freeShipping":    "Penghantaran Percuma Melebihi $50",
			"weAccept":        "Kami Terima:",
			"copyright":       "Hak cipta terpelihara.",
		},
		NSHome: {
			"heroTitle":          "Temui Produk Menakjubkan",
			"heroSubtitle":       "Lihat produk terkini",
			"shopNow":            "Beli sekarang",
			"featuredProducts":   "Produk Pilihan",
			"featuredCategories": "Kategori Pilihan",
			"newArrivals":        "Produk Baharu",
			"saleTitle":          "Jualan Musim Panas",
			"saleSubtitle":       "Diskaun sehingga 50% untuk item terpilih",
			"viewAll":            "Lihat semua",
		},
		NSProducts: {
			"title":        "Produk",
			"filters":      "Penapis",
			"category":     "Kategori",
			"priceRange":   "Julat Harga",
			"rating":       "Penilaian Pelanggan",
			"availability": "Ketersediaan",
			"brand":        "Jenama",
			"inStock":      "Ada Stok",
			"outOfStock":   "Kehabisan Stok",
			"sortBy":       "Susun mengikut",
			"sortName":     "Nama",
			"sortPriceAsc": "Harga: Rendah ke Tinggi",
			"sortPriceDsc": "Harga: Tinggi ke Rendah",
			"sortRating":   "Penilaian",
			"sortNewest":   "Terbaru",
			"noResults":    "Tiada produk dijumpai",
			"addToCart":    "Tambah ke troli",
			"addToWish":    "Tambah ke senarai hajat",
			"description":  "Penerangan",
			"reviews":      "Ulasan Pelanggan",
			"related":      "Anda mungkin juga suka",
			"sale":         "Jualan",
			"clearFilters": "Kosongkan penapis",
		},
		NSCart: {
			"title":          "Troli Beli-belah",
			"empty":          "Troli anda kosong",
			"emptyHint":      "Tambah beberapa produk untuk bermula",
			"quantity":       "Kuantiti",
			"remove":         "Buang",
			"subtotal":       "Jumlah kecil",
			"shipping":       "Penghantaran",
			"tax":            "Cukai",
			"total":          "Jumlah",
			"free":           "Percuma",
			"checkout":       "Bayar",
			"orderSummary":   "Ringkasan Pesanan",
			"orderReview":    "Semakan Pesanan",
			"shippingAddr":   "Alamat Penghantaran",
			"paymentMethod":  "Kaedah Pembayaran",
			"placeOrder":     "Buat pesanan",
			"continue":       "Teruskan membeli-belah",
			"wishlistTitle":  "Senarai Hajat Saya",
			"wishlistEmpty":  "Simpan item kegemaran anda untuk kemudian",
			"moveToCart":     "Pindah ke troli",
			"orderPlaced":    "Pesanan anda telah dibuat",
			"clearCart":      "Kosongkan troli",
			"itemsInCart":    "Item",
		},
		NSCommon: {
			"loading":     "Memuatkan...",
			"error":       "Sesuatu telah berlaku",
			"retry":       "Cuba lagi",
			"notFound":    "Halaman tidak dijumpai",
			"goHome":      "Kembali ke laman utama",
			"save":        "Simpan",
			"cancel":      "Batal",
			"close":       "Tutup",
			"yes":         "Ya",
			"no":          "Tidak",
			"added":       "Ditambah ke troli",
			"removed":     "Dibuang",
			"wishAdded":   "Ditambah ke senarai hajat",
			"wishRemoved": "Dibuang dari senarai hajat",
		},
	},
}
