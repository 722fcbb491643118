package db

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/muratfirtina/teklif-sistemi-sub002/config"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormDB struct {
	DB *gorm.DB
}

func GetDB(c *config.Config) *GormDB {
	gormDB := &GormDB{}
	gormDB.Init(c)
	return gormDB
}

func (g *GormDB) Init(c *config.Config) {
	g.DB = getPostgresDB(c)

	if err := Migrate(g.DB); err != nil {
		log.Fatalf("unable to run migrations: %v", err)
	}
}

func getPostgresDB(c *config.Config) *gorm.DB {
	postgresDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort)

	gormConfig := &gorm.Config{}
	if c.Env != "prod" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN: postgresDSN,
	}), gormConfig)
	if err != nil {
		log.Fatal(err)
	}

	return gormDB
}

// Migrate runs AutoMigrate for every model and seeds the reference rows
// the application expects at startup.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Notification{},
		&models.Customer{},
		&models.Product{},
		&models.StockMovement{},
		&models.Quotation{},
		&models.QuotationItem{},
		&models.ProductionOrder{},
		&models.Invoice{},
		&models.CompanySetting{},
	)
	if err != nil {
		return fmt.Errorf("migrations error: %v", err)
	}

	if err := SeedRoles(db); err != nil {
		return fmt.Errorf("seeding roles error: %v", err)
	}

	if err := SeedSettings(db); err != nil {
		return fmt.Errorf("seeding settings error: %v", err)
	}

	return nil
}

func SeedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{ID: uuid.New(), Name: models.RoleAdmin},
		{ID: uuid.New(), Name: models.RoleProduction},
		{ID: uuid.New(), Name: models.RoleUser},
	}

	for _, role := range roles {
		if err := db.Where(models.Role{Name: role.Name}).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedSettings makes sure the single company-profile row exists.
func SeedSettings(db *gorm.DB) error {
	var setting models.CompanySetting
	return db.Where(models.CompanySetting{Model: models.Model{ID: 1}}).
		Attrs(models.CompanySetting{CompanyName: "My Company"}).
		FirstOrCreate(&setting).Error
}
