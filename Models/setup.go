package Models

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ClinicGroupExists(id uint) (bool, error) {
	var count int64
	err := DB.Model(&ClinicGroup{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func ConnectDataBase() {

	err := godotenv.Load(".env")

	if err != nil {
		log.Fatalf("Error loading .env file")
	}

	DbHost := os.Getenv("DB_HOST")
	DbUser := os.Getenv("DB_USER")
	DbPassword := os.Getenv("DB_PASSWORD")
	DbName := os.Getenv("DB_NAME")
	DbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", DbHost, DbUser, DbPassword, DbName, DbPort)
	// TranslateError so unique index violations come back as gorm.ErrDuplicatedKey
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		fmt.Println("Cannot connect to database ")
		log.Fatal("connection error:", err)
	} else {
		fmt.Println("We are connected to the database ")
	}

	if err := MigrateSchema(DB); err != nil {
		log.Fatal("migration error:", err)
	}
}

// MigrateSchema runs AutoMigrate in dependency order. The test setup runs the
// same migration against sqlite.
func MigrateSchema(db *gorm.DB) error {
	// First migrate models with no dependencies
	if err := db.AutoMigrate(&ClinicGroup{}); err != nil {
		return err
	}
	if err := db.AutoMigrate(&User{}); err != nil {
		return err
	}

	// Then the clinical registry
	if err := db.AutoMigrate(&Patient{}, &Practitioner{}, &PriceListEntry{}, &InventoryItem{}); err != nil {
		return err
	}
	if err := db.AutoMigrate(&ToothRecord{}, &Appointment{}); err != nil {
		return err
	}

	// Finally the quote pipeline, which references everything above
	if err := db.AutoMigrate(&TreatmentPlan{}, &Treatment{}); err != nil {
		return err
	}
	return db.AutoMigrate(&Quote{}, &CompensationEntry{})
}
