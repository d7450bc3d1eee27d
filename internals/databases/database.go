package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mysteryshopper_backend/internals/configs"
	asgmodel "mysteryshopper_backend/internals/features/surveys/assignments/model"
	respmodel "mysteryshopper_backend/internals/features/surveys/responses/model"
	tplmodel "mysteryshopper_backend/internals/features/surveys/templates/model"
	tenantmodel "mysteryshopper_backend/internals/features/tenants/model"
	usermodel "mysteryshopper_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=mysteryshopper&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
		// unique violation → gorm.ErrDuplicatedKey (dipakai guard double-Start)
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool “keisi” & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// Migrate membuat skema + index yang tidak bisa dinyatakan lewat tag.
func Migrate() {
	if err := DB.AutoMigrate(
		&usermodel.UserModel{},
		&tenantmodel.CompanyModel{},
		&tenantmodel.AgencyModel{},
		&tenantmodel.EmployeeModel{},
		&tplmodel.SurveyTemplateModel{},
		&tplmodel.QuestionModel{},
		&asgmodel.SurveyAssignmentModel{},
		&respmodel.SurveyResponseModel{},
		&respmodel.AnswerModel{},
		&respmodel.MediaFileModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrate: %v", err)
	}

	// Paling banyak SATU response aktif per assignment. Partial unique index
	// menutup race dua Start bersamaan (insert kedua kena 23505 → Conflict).
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_survey_responses_active_assignment
		ON survey_responses (response_assignment_id)
		WHERE is_deleted = FALSE
	`).Error; err != nil {
		log.Fatalf("❌ Gagal buat partial unique index: %v", err)
	}

	// Satu jawaban per (response, question) di antara row yang belum dihapus.
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_answers_response_question
		ON answers (answer_response_id, answer_question_id)
		WHERE is_deleted = FALSE
	`).Error; err != nil {
		log.Fatalf("❌ Gagal buat unique index answers: %v", err)
	}

	// Media harus menempel ke TEPAT SATU parent: response XOR answer.
	if err := DB.Exec(`
		DO $$ BEGIN
			ALTER TABLE media_files
			ADD CONSTRAINT chk_media_single_parent
			CHECK ((media_response_id IS NULL) <> (media_answer_id IS NULL));
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$
	`).Error; err != nil {
		log.Printf("⚠️ Constraint media_files dilewati: %v", err)
	}

	log.Println("✅ Migrasi selesai.")
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
