package models

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// SeedVenues is the starter catalog inserted when the venues collection is empty.
func SeedVenues() []Venue {
	return []Venue{
		{
			ID:             uuid.NewString(),
			Name:           "Çırağan Sarayı Ballroom",
			Description:    "Boğaz manzaralı tarihi saray, lüks düğün organizasyonları için ideal.",
			Location:       Location{City: "İstanbul", District: "Beşiktaş", Address: "Çırağan Cad. No:32"},
			Capacity:       CapacityRange{Min: 200, Max: 600},
			PricePerPerson: 850,
			VenueType:      "hotel",
			Features:       []string{"Boğaz Manzarası", "Valet", "Konaklama", "Açık Alan", "İç Mekan"},
			Images:         []string{"https://images.unsplash.com/photo-1519167758481-83f29da8c3e4?w=800"},
			Rating:         4.9,
			ReviewCount:    156,
		},
		{
			ID:             uuid.NewString(),
			Name:           "Esma Sultan Yalısı",
			Description:    "Boğaz kıyısında, tarihi yalı düğün mekanı.",
			Location:       Location{City: "İstanbul", District: "Ortaköy", Address: "Mecidiye Köprüsü Altı"},
			Capacity:       CapacityRange{Min: 150, Max: 400},
			PricePerPerson: 950,
			VenueType:      "outdoor",
			Features:       []string{"Boğaz Manzarası", "Açık Alan", "Tarihi Mekan", "DJ"},
			Images:         []string{"https://images.unsplash.com/photo-1464366400600-7168b8af9bc3?w=800"},
			Rating:         4.8,
			ReviewCount:    98,
		},
		{
			ID:             uuid.NewString(),
			Name:           "Ankara Sheraton",
			Description:    "Ankara'nın kalbinde modern ve şık düğün salonları.",
			Location:       Location{City: "Ankara", District: "Çankaya", Address: "Atatürk Bulvarı"},
			Capacity:       CapacityRange{Min: 300, Max: 800},
			PricePerPerson: 650,
			VenueType:      "hotel",
			Features:       []string{"İç Mekan", "Otopark", "Konaklama", "Profesyonel Ekip"},
			Images:         []string{"https://images.unsplash.com/photo-1511578194003-00c80e42dc9b?w=800"},
			Rating:         4.7,
			ReviewCount:    134,
		},
		{
			ID:             uuid.NewString(),
			Name:           "İzmir Hilton Bahçesi",
			Description:    "Deniz manzaralı bahçe düğünleri için mükemmel.",
			Location:       Location{City: "İzmir", District: "Alsancak", Address: "Gazi Osman Paşa Bulvarı"},
			Capacity:       CapacityRange{Min: 200, Max: 500},
			PricePerPerson: 600,
			VenueType:      "garden",
			Features:       []string{"Deniz Manzarası", "Bahçe", "İç Mekan Seçeneği", "Otopark"},
			Images:         []string{"https://images.unsplash.com/photo-1519741497674-611481863552?w=800"},
			Rating:         4.6,
			ReviewCount:    87,
		},
		{
			ID:             uuid.NewString(),
			Name:           "Polonezköy Doğa Restaurant",
			Description:    "Doğa içinde, rustik düğün mekanı.",
			Location:       Location{City: "İstanbul", District: "Beykoz", Address: "Polonezköy Mahallesi"},
			Capacity:       CapacityRange{Min: 100, Max: 300},
			PricePerPerson: 450,
			VenueType:      "garden",
			Features:       []string{"Doğa", "Bahçe", "Mangal", "Çocuk Oyun Alanı"},
			Images:         []string{"https://images.unsplash.com/photo-1478146896981-b80fe463b330?w=800"},
			Rating:         4.5,
			ReviewCount:    72,
		},
		{
			ID:             uuid.NewString(),
			Name:           "Sapphire Düğün Salonu",
			Description:    "İstanbul'un zirvesinde, panoramik şehir manzarası.",
			Location:       Location{City: "İstanbul", District: "Levent", Address: "Sapphire Tower"},
			Capacity:       CapacityRange{Min: 250, Max: 700},
			PricePerPerson: 800,
			VenueType:      "indoor",
			Features:       []string{"Şehir Manzarası", "Modern Tasarım", "Otopark", "Profesyonel Teknik Ekip"},
			Images:         []string{"https://images.unsplash.com/photo-1533174072545-7a4b6ad7a6c3?w=800"},
			Rating:         4.8,
			ReviewCount:    112,
		},
	}
}

// SeedSuppliers is the starter catalog inserted when the suppliers collection is empty.
func SeedSuppliers() []Supplier {
	return []Supplier{
		{
			ID:             uuid.NewString(),
			BusinessName:   "Elif Fotoğraf Stüdyosu",
			OwnerName:      "Elif Yılmaz",
			Category:       "photography",
			Description:    "Profesyonel düğün fotoğrafçılığı, 10 yıllık deneyim. Her anınızı sanata dönüştürüyoruz.",
			Services:       []string{"Fotoğraf", "Video Çekimi", "Drone Çekim", "Albüm"},
			Location:       Location{City: "İstanbul", District: "Kadıköy"},
			PriceRange:     PriceRange{Min: 8000, Max: 25000},
			Contact:        Contact{Phone: "+90 555 123 4567", Email: "elif@fotograf.com"},
			Images:         []string{"https://images.unsplash.com/photo-1511285560929-80b456fea0bc?w=800"},
			IsWomenOwned:   true,
			IsSocialImpact: false,
			Rating:         4.9,
			ReviewCount:    145,
		},
		{
			ID:             uuid.NewString(),
			BusinessName:   "Zeynep Gelinlik Atölyesi",
			OwnerName:      "Zeynep Kaya",
			Category:       "dress",
			Description:    "Özel tasarım gelinlikler, kişiye özel dikim hizmeti.",
			Services:       []string{"Gelinlik", "Damatlık", "Düğün Elbisesi", "Dikim"},
			Location:       Location{City: "İstanbul", District: "Nişantaşı"},
			PriceRange:     PriceRange{Min: 15000, Max: 80000},
			Contact:        Contact{Phone: "+90 555 234 5678", Email: "zeynep@gelinlik.com"},
			Images:         []string{"https://images.unsplash.com/photo-1594552072238-5cb97bef5356?w=800"},
			IsWomenOwned:   true,
			IsSocialImpact: true,
			Rating:         4.8,
			ReviewCount:    89,
		},
		{
			ID:             uuid.NewString(),
			BusinessName:   "Şef Ahmet Catering",
			OwnerName:      "Ahmet Demir",
			Category:       "catering",
			Description:    "Geleneksel ve modern Türk mutfağı, 500 kişilik organizasyonlar.",
			Services:       []string{"Ana Yemek", "Açık Büfe", "Kokteyl", "Pasta"},
			Location:       Location{City: "Ankara", District: "Çankaya"},
			PriceRange:     PriceRange{Min: 150, Max: 350},
			Contact:        Contact{Phone: "+90 555 345 6789", Email: "ahmet@catering.com"},
			Images:         []string{"https://images.unsplash.com/photo-1555244162-803834f70033?w=800"},
			IsWomenOwned:   false,
			IsSocialImpact: false,
			Rating:         4.7,
			ReviewCount:    134,
		},
		{
			ID:             uuid.NewString(),
			BusinessName:   "Ayşe Çiçekçilik",
			OwnerName:      "Ayşe Şahin",
			Category:       "flowers",
			Description:    "Düğün çiçek süslemeleri, gelin buketi, masa düzenlemeleri.",
			Services:       []string{"Gelin Buketi", "Salon Süsleme", "Masa Çiçekleri", "Araba Süsleme"},
			Location:       Location{City: "İzmir", District: "Karşıyaka"},
			PriceRange:     PriceRange{Min: 5000, Max: 30000},
			Contact:        Contact{Phone: "+90 555 456 7890", Email: "ayse@cicek.com"},
			Images:         []string{"https://images.unsplash.com/photo-1519225421980-715cb0215aed?w=800"},
			IsWomenOwned:   true,
			IsSocialImpact: true,
			Rating:         4.9,
			ReviewCount:    167,
		},
		{
			ID:             uuid.NewString(),
			BusinessName:   "Fatma Kına Organizasyon",
			OwnerName:      "Fatma Özkan",
			Category:       "kina",
			Description:    "Geleneksel ve modern kına geceleri organizasyonu, profesyonel ekip.",
			Services:       []string{"Kına Gecesi", "DJ", "Işık Sistemi", "Kostüm", "Makyaj"},
			Location:       Location{City: "İstanbul", District: "Üsküdar"},
			PriceRange:     PriceRange{Min: 8000, Max: 25000},
			Contact:        Contact{Phone: "+90 555 567 8901", Email: "fatma@kina.com"},
			Images:         []string{"https://images.unsplash.com/photo-1529634768101-fd5c2d8d191c?w=800"},
			IsWomenOwned:   true,
			IsSocialImpact: true,
			Rating:         4.8,
			ReviewCount:    98,
		},
		{
			ID:             uuid.NewString(),
			BusinessName:   "Müzik Dünyası DJ",
			OwnerName:      "Mehmet Yıldız",
			Category:       "music",
			Description:    "Düğün DJ hizmetleri, canlı müzik grupları, ses ve ışık sistemleri.",
			Services:       []string{"DJ", "Canlı Müzik", "Ses Sistemi", "Işık Show"},
			Location:       Location{City: "İstanbul", District: "Beyoğlu"},
			PriceRange:     PriceRange{Min: 6000, Max: 20000},
			Contact:        Contact{Phone: "+90 555 678 9012", Email: "mehmet@muzik.com"},
			Images:         []string{"https://images.unsplash.com/photo-1470229722913-7c0e2dbbafd3?w=800"},
			IsWomenOwned:   false,
			IsSocialImpact: false,
			Rating:         4.6,
			ReviewCount:    76,
		},
		{
			ID:             uuid.NewString(),
			BusinessName:   "Selin Davetiye Tasarım",
			OwnerName:      "Selin Arslan",
			Category:       "invitation",
			Description:    "Özel tasarım davetiyeler, dijital ve basılı seçenekler.",
			Services:       []string{"Basılı Davetiye", "Dijital Davetiye", "Özel Tasarım", "Nikah Şekeri Kartı"},
			Location:       Location{City: "Ankara", District: "Kızılay"},
			PriceRange:     PriceRange{Min: 3000, Max: 15000},
			Contact:        Contact{Phone: "+90 555 789 0123", Email: "selin@davetiye.com"},
			Images:         []string{"https://images.unsplash.com/photo-1606800052052-1e1a930cda79?w=800"},
			IsWomenOwned:   true,
			IsSocialImpact: true,
			Rating:         4.7,
			ReviewCount:    54,
		},
		{
			ID:             uuid.NewString(),
			BusinessName:   "Güzellik Merkezi Salon",
			OwnerName:      "Meral Tekin",
			Category:       "makeup",
			Description:    "Gelin makyajı ve saç tasarımı, denemeli hizmet.",
			Services:       []string{"Gelin Makyajı", "Saç Tasarımı", "Cilt Bakımı", "Prova Makyajı"},
			Location:       Location{City: "İzmir", District: "Bornova"},
			PriceRange:     PriceRange{Min: 2000, Max: 8000},
			Contact:        Contact{Phone: "+90 555 890 1234", Email: "meral@salon.com"},
			Images:         []string{"https://images.unsplash.com/photo-1522337360788-8b13dee7a37e?w=800"},
			IsWomenOwned:   true,
			IsSocialImpact: false,
			Rating:         4.8,
			ReviewCount:    112,
		},
	}
}

// Seed inserts the starter catalog into any empty catalog collection.
func (mdb *MongodbRepo) Seed(ctx context.Context) error {
	venuesCol, err := mdb.GetCollection(ctx, VenuesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	count, err := venuesCol.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("error counting venues: %v", err)
	}
	if count == 0 {
		docs := []interface{}{}
		for _, v := range SeedVenues() {
			docs = append(docs, v)
		}
		if _, err := venuesCol.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("error seeding venues: %v", err)
		}
	}

	suppliersCol, err := mdb.GetCollection(ctx, SuppliersColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	count, err = suppliersCol.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("error counting suppliers: %v", err)
	}
	if count == 0 {
		docs := []interface{}{}
		for _, s := range SeedSuppliers() {
			docs = append(docs, s)
		}
		if _, err := suppliersCol.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("error seeding suppliers: %v", err)
		}
	}

	return nil
}
