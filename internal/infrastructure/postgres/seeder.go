package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// Seeder puebla una BD recién migrada con datos de demostración fijos.
//
// Es idempotente por clase de entidad: si ya existe al menos una fila de esa
// clase, la clase entera se salta — nunca hace merge ni upsert. Las facturas
// se saltan por completo si no hay usuarios o no hay productos (sus FKs serían
// insatisfacibles). Los SKUs y números de factura son fijos, así que re-correr
// contra una BD ya sembrada es un no-op.
//
// Un fallo del seeder es fatal para el arranque: el error se propaga sin
// modificar al llamador.
type Seeder struct {
	pool *pgxpool.Pool
}

// NewSeeder construye el seeder con el pool.
func NewSeeder(pool *pgxpool.Pool) *Seeder {
	return &Seeder{pool: pool}
}

// Seed ejecuta la siembra: usuarios, productos y facturas con sus líneas.
func (s *Seeder) Seed(ctx context.Context) error {
	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	if err := s.seedProducts(ctx); err != nil {
		return err
	}
	return s.seedInvoices(ctx)
}

func (s *Seeder) anyRows(ctx context.Context, table string) (bool, error) {
	var exists bool
	// table viene de un literal interno, nunca de entrada externa
	err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+`)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("verificar filas en %s: %w", table, err)
	}
	return exists, nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	seeded, err := s.anyRows(ctx, "users")
	if err != nil || seeded {
		return err
	}
	users := []entity.User{
		{Username: "admin", Email: "admin@inventorymanagement.com", FirstName: "System", LastName: "Administrator", Role: entity.RoleAdmin, IsActive: true},
		{Username: "manager", Email: "manager@inventorymanagement.com", FirstName: "John", LastName: "Manager", Role: entity.RoleManager, IsActive: true},
		{Username: "user1", Email: "user1@inventorymanagement.com", FirstName: "Jane", LastName: "Smith", Role: entity.RoleUser, IsActive: true},
		{Username: "viewer", Email: "viewer@inventorymanagement.com", FirstName: "Bob", LastName: "Viewer", Role: entity.RoleViewer, IsActive: true},
	}
	passwords := []string{"Admin123!", "Manager123!", "User123!", "Viewer123!"}

	repo := NewUserRepository(s.pool)
	for i := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(passwords[i]), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash contraseña de %s: %w", users[i].Username, err)
		}
		users[i].PasswordHash = string(hash)
		if err := repo.Create(ctx, &users[i]); err != nil {
			return fmt.Errorf("sembrar usuario %s: %w", users[i].Username, err)
		}
	}
	return nil
}

func (s *Seeder) seedProducts(ctx context.Context) error {
	seeded, err := s.anyRows(ctx, "products")
	if err != nil || seeded {
		return err
	}
	products := []entity.Product{
		{Name: "Laptop Dell XPS 13", Description: "High-performance ultrabook with Intel Core i7", SKU: "DELL-XPS13-001",
			Price: dec("1299.99"), Cost: dec("899.99"), StockQuantity: 25, MinimumStockLevel: 5,
			Category: entity.CategoryElectronics, Brand: "Dell", Unit: entity.UnitPiece, IsActive: true},
		{Name: "iPhone 15 Pro", Description: "Latest iPhone with advanced camera system", SKU: "APPLE-IP15P-001",
			Price: dec("999.99"), Cost: dec("699.99"), StockQuantity: 50, MinimumStockLevel: 10,
			Category: entity.CategoryElectronics, Brand: "Apple", Unit: entity.UnitPiece, IsActive: true},
		{Name: "Samsung 4K Monitor", Description: "32-inch 4K UHD monitor with HDR support", SKU: "SAMSUNG-MON32-001",
			Price: dec("349.99"), Cost: dec("249.99"), StockQuantity: 15, MinimumStockLevel: 3,
			Category: entity.CategoryElectronics, Brand: "Samsung", Unit: entity.UnitPiece, IsActive: true},
		{Name: "Men's Cotton T-Shirt", Description: "Comfortable 100% cotton t-shirt in various colors", SKU: "CLOTH-TSHIRT-001",
			Price: dec("19.99"), Cost: dec("8.99"), StockQuantity: 100, MinimumStockLevel: 20,
			Category: entity.CategoryClothing, Brand: "BasicWear", Unit: entity.UnitPiece, IsActive: true},
		{Name: "Women's Jeans", Description: "Slim-fit denim jeans with stretch fabric", SKU: "CLOTH-JEANS-001",
			Price: dec("79.99"), Cost: dec("39.99"), StockQuantity: 75, MinimumStockLevel: 15,
			Category: entity.CategoryClothing, Brand: "DenimCo", Unit: entity.UnitPiece, IsActive: true},
		{Name: "Go Programming Guide", Description: "Comprehensive guide to the Go programming language", SKU: "BOOK-GOLANG-001",
			Price: dec("49.99"), Cost: dec("24.99"), StockQuantity: 30, MinimumStockLevel: 5,
			Category: entity.CategoryBooks, Brand: "TechBooks", Unit: entity.UnitPiece, IsActive: true},
		{Name: "Coffee Maker", Description: "Programmable coffee maker with thermal carafe", SKU: "HOME-COFFEE-001",
			Price: dec("89.99"), Cost: dec("54.99"), StockQuantity: 20, MinimumStockLevel: 5,
			Category: entity.CategoryHomeAndGarden, Brand: "BrewMaster", Unit: entity.UnitPiece, IsActive: true},
		{Name: "Garden Hose 50ft", Description: "Heavy-duty garden hose with spray nozzle", SKU: "GARDEN-HOSE-001",
			Price: dec("39.99"), Cost: dec("19.99"), StockQuantity: 40, MinimumStockLevel: 8,
			Category: entity.CategoryHomeAndGarden, Brand: "GardenPro", Unit: entity.UnitPiece, IsActive: true},
		{Name: "Yoga Mat", Description: "Non-slip exercise yoga mat with carrying strap", SKU: "SPORT-YOGA-001",
			Price: dec("29.99"), Cost: dec("14.99"), StockQuantity: 60, MinimumStockLevel: 12,
			Category: entity.CategorySportsAndOutdoors, Brand: "FitLife", Unit: entity.UnitPiece, IsActive: true},
		{Name: "Face Moisturizer", Description: "Daily hydrating face moisturizer with SPF 30", SKU: "BEAUTY-MOIST-001",
			Price: dec("24.99"), Cost: dec("12.99"), StockQuantity: 80, MinimumStockLevel: 15,
			Category: entity.CategoryHealthAndBeauty, Brand: "SkinCare Pro", Unit: entity.UnitPiece, IsActive: true},
		// Con stock deliberadamente bajo para demos de IsLowStock
		{Name: "Wireless Mouse", Description: "Ergonomic wireless mouse with long battery life", SKU: "TECH-MOUSE-001",
			Price: dec("25.99"), Cost: dec("15.99"), StockQuantity: 2, MinimumStockLevel: 5,
			Category: entity.CategoryElectronics, Brand: "TechGear", Unit: entity.UnitPiece, IsActive: true},
	}

	repo := NewProductRepository(s.pool)
	for i := range products {
		if err := repo.Create(ctx, &products[i]); err != nil {
			return fmt.Errorf("sembrar producto %s: %w", products[i].SKU, err)
		}
	}
	return nil
}

func (s *Seeder) seedInvoices(ctx context.Context) error {
	seeded, err := s.anyRows(ctx, "invoices")
	if err != nil || seeded {
		return err
	}
	// Las FKs de factura serían insatisfacibles sin usuarios o productos:
	// se salta la clase completa.
	if hasUsers, err := s.anyRows(ctx, "users"); err != nil || !hasUsers {
		return err
	}
	if hasProducts, err := s.anyRows(ctx, "products"); err != nil || !hasProducts {
		return err
	}

	userRepo := NewUserRepository(s.pool)
	admin, err := userRepo.GetByUsername(ctx, "admin")
	if err != nil {
		return fmt.Errorf("sembrar facturas: usuario admin: %w", err)
	}
	manager, err := userRepo.GetByUsername(ctx, "manager")
	if err != nil {
		return fmt.Errorf("sembrar facturas: usuario manager: %w", err)
	}

	productRepo := NewProductRepository(s.pool)
	productID := func(sku string) (string, error) {
		p, err := productRepo.GetBySKU(ctx, sku)
		if err != nil {
			return "", fmt.Errorf("sembrar facturas: producto %s: %w", sku, err)
		}
		return p.ID, nil
	}

	now := time.Now().UTC()
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }
	dayPtr := func(offset int) *time.Time { d := day(offset); return &d }

	type seedItem struct {
		sku         string
		quantity    int
		unitPrice   string
		discount    string
		description string
	}
	seedInvoices := []struct {
		invoice entity.Invoice
		items   []seedItem
	}{
		{
			invoice: entity.Invoice{
				InvoiceNumber: "INV-2025-001", InvoiceDate: day(-30), DueDate: dayPtr(-15),
				CustomerName: "ABC Corporation", CustomerEmail: "orders@abccorp.com",
				CustomerPhone: "+1-555-0123", CustomerAddress: "123 Business Ave, City, State 12345",
				Status: entity.StatusPaid, SubTotal: dec("1649.98"), TaxAmount: dec("164.98"),
				DiscountAmount: dec("50.00"), TotalAmount: dec("1764.96"),
				Notes: "Bulk order for office equipment", CreatedByUserID: admin.ID,
			},
			items: []seedItem{
				{"DELL-XPS13-001", 1, "1299.99", "50.00", "Laptop for office use"},
				{"SAMSUNG-MON32-001", 1, "349.99", "0", "Monitor for workstation"},
			},
		},
		{
			invoice: entity.Invoice{
				InvoiceNumber: "INV-2025-002", InvoiceDate: day(-15), DueDate: dayPtr(15),
				CustomerName: "XYZ Retail Store", CustomerEmail: "purchasing@xyzstore.com",
				CustomerPhone: "+1-555-0456", CustomerAddress: "456 Retail Blvd, City, State 67890",
				Status: entity.StatusSent, SubTotal: dec("399.96"), TaxAmount: dec("39.99"),
				DiscountAmount: dec("0"), TotalAmount: dec("439.95"),
				Notes: "Monthly inventory restocking", CreatedByUserID: manager.ID,
			},
			items: []seedItem{
				{"CLOTH-TSHIRT-001", 10, "19.99", "0", "Staff uniforms"},
				{"CLOTH-JEANS-001", 5, "79.99", "0", "Staff uniforms"},
			},
		},
		{
			invoice: entity.Invoice{
				InvoiceNumber: "INV-2025-003", InvoiceDate: day(-45), DueDate: dayPtr(-10),
				CustomerName: "Small Business LLC", CustomerEmail: "finance@smallbiz.com",
				CustomerPhone: "+1-555-0789", CustomerAddress: "789 Commerce St, City, State 13579",
				Status: entity.StatusOverdue, SubTotal: dec("159.98"), TaxAmount: dec("15.99"),
				DiscountAmount: dec("0"), TotalAmount: dec("175.97"),
				Notes: "Follow up required for payment", CreatedByUserID: admin.ID,
			},
			items: []seedItem{
				{"HOME-COFFEE-001", 1, "89.99", "0", "Office coffee maker"},
				{"SPORT-YOGA-001", 2, "29.99", "0", "Employee wellness program"},
			},
		},
		{
			invoice: entity.Invoice{
				InvoiceNumber: "INV-2025-004", InvoiceDate: day(0), DueDate: dayPtr(30),
				CustomerName: "Tech Startup Inc", CustomerEmail: "orders@techstartup.com",
				CustomerPhone: "+1-555-0321", CustomerAddress: "321 Innovation Dr, City, State 24680",
				Status: entity.StatusDraft, SubTotal: dec("0"), TaxAmount: dec("0"),
				DiscountAmount: dec("0"), TotalAmount: dec("0"),
				Notes: "Draft - pending item selection", CreatedByUserID: manager.ID,
			},
		},
	}

	// Cada factura con sus líneas se inserta en una sola transacción.
	runner := NewTxRunner(s.pool)
	for _, seed := range seedInvoices {
		seed := seed
		err := runner.Run(ctx, func(_ repository.UserRepository, _ repository.ProductRepository, invoices repository.InvoiceRepository) error {
			if err := invoices.Create(ctx, &seed.invoice); err != nil {
				return fmt.Errorf("sembrar factura %s: %w", seed.invoice.InvoiceNumber, err)
			}
			for _, it := range seed.items {
				pid, err := productID(it.sku)
				if err != nil {
					return err
				}
				item := entity.InvoiceItem{
					Quantity:       it.quantity,
					UnitPrice:      dec(it.unitPrice),
					DiscountAmount: dec(it.discount),
					Description:    it.description,
					InvoiceID:      seed.invoice.ID,
					ProductID:      pid,
				}
				if err := invoices.CreateItem(ctx, &item); err != nil {
					return fmt.Errorf("sembrar línea de %s: %w", seed.invoice.InvoiceNumber, err)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// dec atajo para literales decimales de siembra (paniquea solo con literales mal escritos).
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
