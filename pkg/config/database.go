package config

import (
	"context"
	"fmt"
	"time"

	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/anonto42/medishare/backend/internal/repositories"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB holds the database connections
type DB struct {
	SQL   *gorm.DB
	Mongo *mongo.Client
	// MongoDB is the catalog database on Mongo.
	MongoDB *mongo.Database
}

// InitDB opens and pings the SQL and Mongo connections named by cfg.
func InitDB(cfg *Config) (*DB, error) {
	sqlDB, err := initSQL(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.DBDriver, err)
	}

	mongoClient, err := initMongo(cfg.MongoURI)
	if err != nil {
		db := &DB{SQL: sqlDB}
		db.CloseDB()
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return &DB{
		SQL:     sqlDB,
		Mongo:   mongoClient,
		MongoDB: mongoClient.Database(cfg.MongoDatabase),
	}, nil
}

func dialector(cfg *Config) gorm.Dialector {
	if cfg.DBDriver == DriverMySQL {
		return mysql.Open(cfg.MySQLDSN)
	}
	return postgres.Open(cfg.PostgresConnStr)
}

// initSQL opens the gorm handle. TranslateError makes unique violations
// surface as gorm.ErrDuplicatedKey, which the request ledger relies on.
func initSQL(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(cfg), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	logrus.WithField("driver", cfg.DBDriver).Info("connected to SQL database")
	return db, nil
}

func initMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	logrus.Info("connected to MongoDB")
	return client, nil
}

// Migrate creates the SQL tables and the catalog indexes.
func (db *DB) Migrate(ctx context.Context) error {
	err := db.SQL.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.RequestRecord{},
		&models.Notification{},
		&models.FeedbackRecord{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for _, stmt := range caseSensitiveKeys(db.SQL.Dialector.Name()) {
		if err := db.SQL.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("binary collation: %w", err)
		}
	}
	if err := repositories.NewMongoListingRepository(db.MongoDB).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("listing indexes: %w", err)
	}
	logrus.Info("migrations completed")
	return nil
}

// caseSensitiveKeys returns the statements that make medicine name keys
// compare byte for byte, as the Mongo catalog does. MySQL's default
// collation is case-insensitive; Postgres already compares exactly.
func caseSensitiveKeys(dialect string) []string {
	if dialect != DriverMySQL {
		return nil
	}
	return []string{
		"ALTER TABLE request_records MODIFY medicine_name VARCHAR(200) " +
			"CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL",
	}
}

// CloseDB closes the database connections
func (db *DB) CloseDB() {
	if db.SQL != nil {
		sqlDB, err := db.SQL.DB()
		if err != nil {
			logrus.WithError(err).Error("error getting SQL DB from gorm")
		} else if err := sqlDB.Close(); err != nil {
			logrus.WithError(err).Error("error closing SQL connection")
		} else {
			logrus.Info("SQL connection closed")
		}
	}

	if db.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Mongo.Disconnect(ctx); err != nil {
			logrus.WithError(err).Error("error closing MongoDB connection")
		} else {
			logrus.Info("MongoDB connection closed")
		}
	}
}
