// Package seed holds the sample storefront content loaded at startup.
package seed

import (
	"github.com/shopspring/decimal"

	"mrfixit/internal/models"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Products returns the sample catalog in display order.
func Products() []models.Product {
	products := []models.Product{
		{ID: "prod-001", Name: "Heavy Duty Power Drill", Category: "Tools", Brand: "DeWalt", PriceUSD: price("89.99"), PriceZWL: price("8999.00"), Rating: 4.5, ImageURL: "https://images.unsplash.com/photo-1504148455328-c376907d081c?w=500&q=80"},
		{ID: "prod-002", Name: "Professional Paint Roller Set", Category: "Paint", Brand: "Dulux", PriceUSD: price("24.99"), PriceZWL: price("2499.00"), Rating: 4.2, ImageURL: "https://images.unsplash.com/photo-1581091226033-d5c48150dbaa?w=500&q=80"},
		{ID: "prod-003", Name: "Garden Hose with Adjustable Nozzle", Category: "Garden Supplies", Brand: "Ryobi", PriceUSD: price("32.50"), PriceZWL: price("3250.00"), Rating: 3.8, ImageURL: "https://images.unsplash.com/photo-1599619585752-c3edb42a414c?w=500&q=80"},
		{ID: "prod-004", Name: "Premium Cement Bag 50kg", Category: "Building Materials", Brand: "Cobra", PriceUSD: price("12.75"), PriceZWL: price("1275.00"), Rating: 4.0, ImageURL: "https://images.unsplash.com/photo-1518640467707-6811f4a6ab73?w=500&q=80"},
		{ID: "prod-005", Name: "LED Floodlight 50W", Category: "Electrical", Brand: "Bosch", PriceUSD: price("45.99"), PriceZWL: price("4599.00"), Rating: 4.7, ImageURL: "https://images.unsplash.com/photo-1535723129303-40403ebcce1b?w=500&q=80"},
		{ID: "prod-006", Name: "PVC Pipe Set for Plumbing", Category: "Plumbing", Brand: "Cobra", PriceUSD: price("18.25"), PriceZWL: price("1825.00"), Rating: 4.3, ImageURL: "https://images.unsplash.com/photo-1542013936693-884638332954?w=500&q=80"},
		{ID: "prod-007", Name: "Measuring Tape 5m", Category: "Tools", Brand: "Stanley", PriceUSD: price("5.99"), PriceZWL: price("599.00"), Rating: 4.1, ImageURL: "https://images.unsplash.com/photo-1589939705384-5185137a7f0f?w=500&q=80"},
		{ID: "prod-008", Name: "Safety Helmet Yellow", Category: "Safety Equipment", Brand: "Stanley", PriceUSD: price("14.50"), PriceZWL: price("1450.00"), Rating: 4.6, ImageURL: "https://images.unsplash.com/photo-1578255321055-10fa7d3ae116?w=500&q=80"},
		{ID: "prod-009", Name: "Cordless Circular Saw", Category: "Tools", Brand: "Makita", PriceUSD: price("129.99"), PriceZWL: price("12999.00"), Rating: 4.8, ImageURL: "https://images.unsplash.com/photo-1572981779307-38b8cabb2407?w=500&q=80"},
		{ID: "prod-010", Name: "Exterior House Paint 20L", Category: "Paint", Brand: "Dulux", PriceUSD: price("79.99"), PriceZWL: price("7999.00"), Rating: 4.4, ImageURL: "https://images.unsplash.com/photo-1589939705384-5185137a7f0f?w=500&q=80"},
		{ID: "prod-011", Name: "Gardening Tool Set", Category: "Garden Supplies", Brand: "Black & Decker", PriceUSD: price("49.99"), PriceZWL: price("4999.00"), Rating: 4.2, ImageURL: "https://images.unsplash.com/photo-1585513553738-84971d9c2f8d?w=500&q=80"},
		{ID: "prod-012", Name: "Brick Set 500pcs", Category: "Building Materials", Brand: "Cobra", PriceUSD: price("199.99"), PriceZWL: price("19999.00"), Rating: 4.3, ImageURL: "https://images.unsplash.com/photo-1590247813693-5541d1c609fd?w=500&q=80"},
	}
	for i := range products {
		products[i].Position = i + 1
	}
	return products
}

// Brands lists the brands offered in the filter sidebar.
func Brands() []string {
	return []string{"DeWalt", "Bosch", "Makita", "Stanley", "Black & Decker", "Dulux", "Cobra", "Ryobi"}
}

// BlogPosts returns the blog articles, featured post first.
func BlogPosts() []models.BlogPost {
	posts := []models.BlogPost{
		{
			ID:       "featured-1",
			Title:    "10 Essential Tools Every Zimbabwean Homeowner Should Have",
			Excerpt:  "Discover the must-have tools that will help you tackle common household repairs and maintenance tasks, saving you money and time in the long run.",
			Category: "Tools",
			Date:     "June 5, 2023",
			ReadTime: "8 min read",
			ImageURL: "https://images.unsplash.com/photo-1581147036324-c47a03a81d48?w=1200&q=80",
			Featured: true,
		},
		{
			ID:       "1",
			Title:    "DIY Home Improvement Tips for Beginners",
			Excerpt:  "Learn the essential skills and tools needed to start your DIY journey with confidence. Perfect for homeowners looking to save money on basic repairs.",
			Category: "DIY Tips",
			Date:     "May 15, 2023",
			ReadTime: "5 min read",
			ImageURL: "https://images.unsplash.com/photo-1581244277943-fe4a9c777189?w=800&q=80",
		},
		{
			ID:       "2",
			Title:    "How to Choose the Right Paint for Your Project",
			Excerpt:  "A comprehensive guide to selecting the perfect paint type, finish, and color for different surfaces and rooms in your home.",
			Category: "Paint",
			Date:     "June 2, 2023",
			ReadTime: "7 min read",
			ImageURL: "https://images.unsplash.com/photo-1562259929-b4e1fd3aef09?w=800&q=80",
		},
		{
			ID:       "3",
			Title:    "Essential Power Tools Every Homeowner Should Own",
			Excerpt:  "Discover the must-have power tools that will help you tackle a wide range of home maintenance and improvement projects.",
			Category: "Tools",
			Date:     "June 18, 2023",
			ReadTime: "6 min read",
			ImageURL: "https://images.unsplash.com/photo-1572981779307-38e8d365fa2e?w=800&q=80",
		},
		{
			ID:       "4",
			Title:    "Building a Raised Garden Bed: Step-by-Step Guide",
			Excerpt:  "Follow this detailed tutorial to create your own raised garden bed using basic materials from your local hardware store.",
			Category: "Garden",
			Date:     "July 5, 2023",
			ReadTime: "8 min read",
			ImageURL: "https://images.unsplash.com/photo-1591857177580-dc82b9ac4e1e?w=800&q=80",
		},
		{
			ID:       "5",
			Title:    "Fixing Common Plumbing Issues Without a Professional",
			Excerpt:  "Learn how to diagnose and repair simple plumbing problems, saving you time and money on professional services.",
			Category: "Plumbing",
			Date:     "July 22, 2023",
			ReadTime: "10 min read",
			ImageURL: "https://images.unsplash.com/photo-1607472586893-edb57bdc0e39?w=800&q=80",
		},
		{
			ID:       "6",
			Title:    "Weatherproofing Your Home for the Rainy Season",
			Excerpt:  "Prepare your home for Zimbabwe's rainy season with these essential weatherproofing tips and product recommendations.",
			Category: "Seasonal",
			Date:     "August 10, 2023",
			ReadTime: "6 min read",
			ImageURL: "https://images.unsplash.com/photo-1534274988757-a28bf1a57c17?w=800&q=80",
		},
	}
	for i := range posts {
		posts[i].Position = i + 1
	}
	return posts
}

// BlogCategories lists the blog tabs. "All" places no restriction.
func BlogCategories() []string {
	return []string{"All", "DIY Tips", "Tools", "Paint", "Plumbing", "Electrical", "Garden", "Seasonal"}
}

// Slides returns the hero carousel promotions.
func Slides() []models.Slide {
	slides := []models.Slide{
		{ID: 1, Title: "Season Sale", Description: "Get up to 30% off on all building materials this month!", ImageURL: "https://images.unsplash.com/photo-1581578731548-c64695cc6952?w=1200&q=80", CTAText: "Shop Now", CTALink: "/products"},
		{ID: 2, Title: "New Tools Arrived", Description: "Check out our latest collection of professional-grade tools", ImageURL: "https://images.unsplash.com/photo-1504917595217-d4dc5ebe6122?w=1200&q=80", CTAText: "Explore", CTALink: "/products?category=tools"},
		{ID: 3, Title: "DIY Project Kits", Description: "Everything you need for your home improvement projects", ImageURL: "https://images.unsplash.com/photo-1530124566582-a618bc2615dc?w=1200&q=80", CTAText: "Get Started", CTALink: "/products?category=building-materials"},
	}
	for i := range slides {
		slides[i].Position = i + 1
	}
	return slides
}

// Categories returns the product category tiles.
func Categories() []models.Category {
	categories := []models.Category{
		{ID: "1", Name: "Tools", Slug: "tools", ImageURL: "https://images.unsplash.com/photo-1581147036324-c47a03a81d48?w=600&q=80"},
		{ID: "2", Name: "Building Materials", Slug: "building-materials", ImageURL: "https://images.unsplash.com/photo-1518640467707-6811f4a6ab73?w=600&q=80"},
		{ID: "3", Name: "Electrical", Slug: "electrical", ImageURL: "https://images.unsplash.com/photo-1558424871-c0cc3c951926?w=600&q=80"},
		{ID: "4", Name: "Plumbing", Slug: "plumbing", ImageURL: "https://images.unsplash.com/photo-1607472586893-edb57bdc0e39?w=600&q=80"},
		{ID: "5", Name: "Paint", Slug: "paint", ImageURL: "https://images.unsplash.com/photo-1562259929-b4e1fd3aef09?w=600&q=80"},
		{ID: "6", Name: "Garden Supplies", Slug: "garden-supplies", ImageURL: "https://images.unsplash.com/photo-1599685315640-4a9ba2613f46?w=600&q=80"},
	}
	for i := range categories {
		categories[i].Position = i + 1
	}
	return categories
}

// CompanyValues returns the values listed on the about page.
func CompanyValues() []models.CompanyValue {
	values := []models.CompanyValue{
		{Icon: models.ValueIconQuality, Title: "Quality Products", Description: "We source only the highest quality hardware products from trusted manufacturers to ensure durability and reliability."},
		{Icon: models.ValueIconService, Title: "Customer Service", Description: "Our dedicated team is committed to providing exceptional service and expert advice for all your hardware needs."},
		{Icon: models.ValueIconCommunity, Title: "Community Support", Description: "We're proud to support local Zimbabwean communities through employment opportunities and community initiatives."},
		{Icon: models.ValueIconExpertise, Title: "Technical Expertise", Description: "Our staff undergoes regular training to stay updated with the latest products and techniques in the hardware industry."},
	}
	for i := range values {
		values[i].Glyph = values[i].Icon.Glyph()
	}
	return values
}

// Testimonials returns the customer quotes shown on the home page.
func Testimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			Name:      "Tendai Moyo",
			AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Tendai",
			Rating:    5,
			Quote:     "Mr. Fix It Hardware has been my go-to store for all building materials. Their prices are competitive and the staff is very knowledgeable.",
			Date:      "April 10, 2023",
		},
		{
			Name:      "Chiedza Mutasa",
			AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Chiedza",
			Rating:    4,
			Quote:     "I renovated my entire kitchen with supplies from Mr. Fix It. The quality of their products is excellent and they always have what I need in stock.",
			Date:      "May 22, 2023",
		},
		{
			Name:      "Farai Ndlovu",
			AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Farai",
			Rating:    5,
			Quote:     "As a professional contractor, I appreciate their dual currency options and the wide range of tools they offer. Definitely the best hardware store in Harare!",
			Date:      "June 15, 2023",
		},
		{
			Name:      "Nyasha Zimuto",
			AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Nyasha",
			Rating:    5,
			Quote:     "The staff at Mr. Fix It went above and beyond to help me find the right materials for my DIY project. Their customer service is outstanding.",
			Date:      "July 3, 2023",
		},
	}
}

// History returns the company timeline, oldest first.
func History() []models.Milestone {
	return []models.Milestone{
		{Year: "1995", Title: "Humble Beginnings", Description: "Mr. Fix It Hardware started as a small family-owned shop in Harare with just a handful of essential hardware products.", ImageURL: "https://images.unsplash.com/photo-1581578731548-c64695cc6952?w=600&q=80"},
		{Year: "2003", Title: "Expansion to Bulawayo", Description: "After years of steady growth, we opened our second location in Bulawayo to serve customers in Zimbabwe's second-largest city.", ImageURL: "https://images.unsplash.com/photo-1504307651254-35680f356dfd?w=600&q=80"},
		{Year: "2010", Title: "Weathering Economic Challenges", Description: "During Zimbabwe's economic difficulties, we adapted our business model to continue providing essential hardware supplies to our communities.", ImageURL: "https://images.unsplash.com/photo-1542744173-8e7e53415bb0?w=600&q=80"},
		{Year: "2018", Title: "Digital Transformation", Description: "We launched our first e-commerce platform to make our products accessible to customers throughout Zimbabwe.", ImageURL: "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=600&q=80"},
		{Year: "2023", Title: "Today", Description: "Now with 5 physical locations and a robust online presence, Mr. Fix It Hardware has become Zimbabwe's trusted source for quality hardware and building supplies.", ImageURL: "https://images.unsplash.com/photo-1577412647305-991150c7d163?w=600&q=80"},
	}
}
