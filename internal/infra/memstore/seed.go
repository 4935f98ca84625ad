package memstore

import (
	"context"
	"time"

	"github.com/localstyle/brand-admin-go/internal/domain"
)

// Stores bundles every in-memory collection for wiring and seeding.
type Stores struct {
	Categories *CategoryStore
	Staff      *StaffStore
	Invites    *InviteStore
	Products   *ProductStore
	Brand      *BrandStore
	Branches   *BranchDirectory
	Tokens     *TokenStore
}

// NewStores creates the full set of empty stores.
func NewStores() *Stores {
	return &Stores{
		Categories: NewCategoryStore(),
		Staff:      NewStaffStore(),
		Invites:    NewInviteStore(),
		Products:   NewProductStore(),
		Brand:      NewBrandStore(),
		Branches: NewBranchDirectory(map[string]string{
			"branch_001": "Downtown LA Store",
			"branch_002": "SF Union Square",
		}),
		Tokens: NewTokenStore(),
	}
}

func strPtr(s string) *string { return &s }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Seed loads the demo dataset the admin UI was built against: a two-level
// category tree, a small catalog, and a five-person staff directory.
func Seed(ctx context.Context, s *Stores) error {
	if err := seedBrand(ctx, s.Brand); err != nil {
		return err
	}
	if err := seedCategories(ctx, s.Categories); err != nil {
		return err
	}
	if err := seedProducts(ctx, s.Products); err != nil {
		return err
	}
	return seedStaff(ctx, s.Staff)
}

func seedBrand(ctx context.Context, store *BrandStore) error {
	return store.Save(ctx, &domain.Brand{
		ID:      "brand_001",
		Name:    "Nova Style",
		LogoURL: "https://picsum.photos/seed/novastyle-logo/300/300",
		Bio:     "Nova Style is a contemporary fashion brand that combines modern aesthetics with timeless elegance.",
		ContactInfo: domain.BrandContactInfo{
			Email:   "contact@novastyle.com",
			Phone:   "+1 (555) 123-4567",
			Website: "https://www.novastyle.com",
		},
	})
}

func seedCategories(ctx context.Context, store *CategoryStore) error {
	created := date(2024, time.January, 15)
	categories := []domain.Category{
		{
			ID: "1", Name: "Clothing", Description: "All clothing items", Slug: "clothing",
			ParentID: nil, Level: 0, IsActive: true, SortOrder: 1, ProductCount: 45,
			MetaTitle: "Clothing Collection", CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "2", Name: "Shirts", Description: "Casual and formal shirts", Slug: "shirts",
			ParentID: strPtr("1"), Level: 1, IsActive: true, SortOrder: 1, ProductCount: 15,
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "3", Name: "Dresses", Description: "Dresses for every occasion", Slug: "dresses",
			ParentID: strPtr("1"), Level: 1, IsActive: true, SortOrder: 2, ProductCount: 20,
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "4", Name: "Accessories", Description: "Bags, jewelry, and more", Slug: "accessories",
			ParentID: nil, Level: 0, IsActive: true, SortOrder: 2, ProductCount: 30,
			MetaTitle: "Accessories Collection", CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "5", Name: "Bags", Description: "Handbags, backpacks, and totes", Slug: "bags",
			ParentID: strPtr("4"), Level: 1, IsActive: true, SortOrder: 1, ProductCount: 12,
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "6", Name: "Jewelry", Description: "Necklaces, earrings, and rings", Slug: "jewelry",
			ParentID: strPtr("4"), Level: 1, IsActive: true, SortOrder: 2, ProductCount: 18,
			CreatedAt: created, UpdatedAt: created,
		},
	}
	for i := range categories {
		if err := store.Insert(ctx, &categories[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedProducts(ctx context.Context, store *ProductStore) error {
	products := []domain.Product{
		{
			ID: "prod_001", Name: "Classic Cotton T-Shirt",
			Description: "Premium 100% cotton t-shirt with comfortable fit and modern design.",
			Price:       29.99, IsPriceVisible: true, SKU: "LS-TEE-001", Category: "T-Shirts",
			Colors: []string{"Black", "White", "Navy", "Gray"},
			Sizes:  []string{"XS", "S", "M", "L", "XL"},
			Status: domain.ProductPublished,
			Tags:   []string{"casual", "cotton", "basic", "unisex"},
			ImageURLs: []string{
				"https://picsum.photos/seed/tshirt1a/300/400",
				"https://picsum.photos/seed/tshirt1b/300/400",
			},
			DateAdded: date(2024, time.January, 15),
		},
		{
			ID: "prod_002", Name: "Slim Fit Dark Wash Jeans",
			Description: "Modern slim-fit jeans crafted from premium denim with stretch comfort.",
			Price:       89.99, IsPriceVisible: true, SKU: "LS-JNS-002", Category: "Jeans",
			Colors: []string{"Dark Blue", "Black", "Medium Blue"},
			Sizes:  []string{"28", "30", "32", "34", "36"},
			Status: domain.ProductPublished,
			Tags:   []string{"denim", "slim-fit", "premium"},
			ImageURLs: []string{
				"https://picsum.photos/seed/jeans2a/300/400",
			},
			DateAdded: date(2024, time.January, 18),
		},
		{
			ID: "prod_003", Name: "Professional Leather Boots",
			Description: "Handcrafted leather boots for business casual wear.",
			Price:       249.99, IsPriceVisible: true, SKU: "LS-BTS-006", Category: "Boots",
			Colors: []string{"Brown", "Black", "Tan"},
			Sizes:  []string{"7", "8", "9", "10", "11", "12"},
			Status: domain.ProductDraft,
			Tags:   []string{"leather", "business", "handcrafted"},
			ImageURLs: []string{
				"https://picsum.photos/seed/boots6a/300/400",
			},
			DateAdded: date(2024, time.February, 1),
		},
	}
	for i := range products {
		if err := store.Insert(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedStaff(ctx context.Context, store *StaffStore) error {
	profiles := []domain.StaffProfile{
		{
			ID: "staff_001", Email: "sarah.johnson@localstyle.com",
			Name: "Sarah Johnson", FirstName: "Sarah", LastName: "Johnson",
			Role: domain.RoleBrandOwner, PhoneNumber: "+1 (555) 234-5678",
			Address: domain.Address{
				Street: "123 Fashion Ave", City: "New York", State: "NY",
				ZipCode: "10001", Country: "USA",
			},
			EmergencyContact: domain.EmergencyContact{
				Name: "Michael Johnson", PhoneNumber: "+1 (555) 234-5679", Relationship: "Spouse",
			},
			Status: domain.StaffActive, Department: "Executive", Position: "Brand Owner",
			EmployeeID: "EMP001", HireDate: date(2020, time.January, 15), Salary: 120000,
			IsEmailVerified: true, IsPhoneVerified: true,
			Permissions: domain.PermissionsFor(domain.RoleBrandOwner),
			CreatedAt:   date(2020, time.January, 15), UpdatedAt: date(2024, time.February, 1),
			CreatedBy: "system", UpdatedBy: "staff_001",
		},
		{
			ID: "staff_002", Email: "marcus.chen@localstyle.com",
			Name: "Marcus Chen", FirstName: "Marcus", LastName: "Chen",
			Role: domain.RoleBranchManager, PhoneNumber: "+1 (555) 345-6789",
			Address: domain.Address{
				Street: "456 Retail Blvd", City: "Los Angeles", State: "CA",
				ZipCode: "90210", Country: "USA",
			},
			EmergencyContact: domain.EmergencyContact{
				Name: "Lisa Chen", PhoneNumber: "+1 (555) 345-6780", Relationship: "Sister",
			},
			Status: domain.StaffActive, Department: "Operations", Position: "Store Manager",
			BranchID: "branch_001", BranchName: "Downtown LA Store",
			Manager:    domain.ManagerRef{ID: "staff_001", Name: "Sarah Johnson"},
			EmployeeID: "EMP002", HireDate: date(2021, time.March, 1), Salary: 75000,
			IsEmailVerified: true, IsPhoneVerified: true,
			Permissions: domain.PermissionsFor(domain.RoleBranchManager),
			CreatedAt:   date(2021, time.March, 1), UpdatedAt: date(2024, time.February, 1),
			CreatedBy: "staff_001", UpdatedBy: "staff_002",
		},
		{
			ID: "staff_003", Email: "emma.rodriguez@localstyle.com",
			Name: "Emma Rodriguez", FirstName: "Emma", LastName: "Rodriguez",
			Role: domain.RoleStaff, PhoneNumber: "+1 (555) 456-7890",
			Address: domain.Address{
				Street: "789 Commerce St", City: "Los Angeles", State: "CA",
				ZipCode: "90210", Country: "USA",
			},
			EmergencyContact: domain.EmergencyContact{
				Name: "Carlos Rodriguez", PhoneNumber: "+1 (555) 456-7891", Relationship: "Father",
			},
			Status: domain.StaffActive, Department: "Sales", Position: "Sales Associate",
			BranchID: "branch_001", BranchName: "Downtown LA Store",
			Manager:    domain.ManagerRef{ID: "staff_002", Name: "Marcus Chen"},
			EmployeeID: "EMP003", HireDate: date(2022, time.June, 15), Salary: 45000,
			IsEmailVerified: true,
			Permissions:     domain.PermissionsFor(domain.RoleStaff),
			CreatedAt:       date(2022, time.June, 15), UpdatedAt: date(2024, time.February, 1),
			CreatedBy: "staff_002", UpdatedBy: "staff_003",
		},
		{
			ID: "staff_004", Email: "david.kim@localstyle.com",
			Name: "David Kim", FirstName: "David", LastName: "Kim",
			Role: domain.RoleStaff, PhoneNumber: "+1 (555) 567-8901",
			Address: domain.Address{
				Street: "321 Style Lane", City: "San Francisco", State: "CA",
				ZipCode: "94102", Country: "USA",
			},
			EmergencyContact: domain.EmergencyContact{
				Name: "Grace Kim", PhoneNumber: "+1 (555) 567-8902", Relationship: "Mother",
			},
			Status: domain.StaffPending, Department: "Sales", Position: "Sales Associate",
			BranchID: "branch_002", BranchName: "SF Union Square",
			Manager:    domain.ManagerRef{ID: "staff_005", Name: "Jennifer Martinez"},
			EmployeeID: "EMP004", HireDate: date(2024, time.February, 1), Salary: 45000,
			Permissions: domain.PermissionsFor(domain.RoleStaff),
			CreatedAt:   date(2024, time.February, 1), UpdatedAt: date(2024, time.February, 1),
			CreatedBy: "staff_001", UpdatedBy: "staff_001",
		},
		{
			ID: "staff_005", Email: "jennifer.martinez@localstyle.com",
			Name: "Jennifer Martinez", FirstName: "Jennifer", LastName: "Martinez",
			Role: domain.RoleBranchManager, PhoneNumber: "+1 (555) 678-9012",
			Address: domain.Address{
				Street: "654 Market St", City: "San Francisco", State: "CA",
				ZipCode: "94105", Country: "USA",
			},
			EmergencyContact: domain.EmergencyContact{
				Name: "Roberto Martinez", PhoneNumber: "+1 (555) 678-9013", Relationship: "Husband",
			},
			Status: domain.StaffActive, Department: "Operations", Position: "Store Manager",
			BranchID: "branch_002", BranchName: "SF Union Square",
			Manager:    domain.ManagerRef{ID: "staff_001", Name: "Sarah Johnson"},
			EmployeeID: "EMP005", HireDate: date(2021, time.August, 1), Salary: 78000,
			IsEmailVerified: true, IsPhoneVerified: true,
			Permissions: domain.PermissionsFor(domain.RoleBranchManager),
			CreatedAt:   date(2021, time.August, 1), UpdatedAt: date(2024, time.February, 1),
			CreatedBy: "staff_001", UpdatedBy: "staff_005",
		},
	}
	for i := range profiles {
		if err := store.Insert(ctx, &profiles[i]); err != nil {
			return err
		}
	}
	return nil
}
