// Package config reads environment variables and the optional config
// file into an explicit Config struct handed to the rest of the app
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var configFile = pflag.String("config", "", "Path to an optional config.toml file")

type Host struct {
	Port   int
	Domain string
	SSL    bool
}

type Database struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWT struct {
	Secret    string
	AccessTTL time.Duration
	VerifyTTL time.Duration
}

type Mail struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	Workers   int
	QueueSize int
}

type AWS struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

type Config struct {
	Host      Host
	DB        Database
	JWT       JWT
	Mail      Mail
	AWS       AWS
	RateLimit int
}

// Load prepares everything config-related so that the app can start
// working. It returns an error if something is critically wrong and
// the application can't run because of that. No global viper state is
// consulted after Load returns.
func Load() (*Config, error) {
	pflag.Parse()

	v.SetConfigType("toml")
	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")
	v.BindEnv("host.ssl", "host_ssl_enabled")

	v.BindEnv("db.host", "db_host")
	v.BindEnv("db.port", "db_port")
	v.BindEnv("db.user", "db_user")
	v.BindEnv("db.password", "db_password")
	v.BindEnv("db.name", "db_name")
	v.BindEnv("db.sslmode", "db_sslmode")

	v.BindEnv("jwt.secret", "jwt_secret")
	v.BindEnv("jwt.expiration_seconds", "jwt_expiration_seconds")
	v.BindEnv("jwt.verify_expiration_seconds", "jwt_verify_expiration_seconds")

	v.BindEnv("mail.host", "mail_server")
	v.BindEnv("mail.port", "mail_port")
	v.BindEnv("mail.username", "mail_username")
	v.BindEnv("mail.password", "mail_password")
	v.BindEnv("mail.from", "mail_from")
	v.BindEnv("mail.workers", "mail_workers")
	v.BindEnv("mail.queue_size", "mail_queue_size")

	v.BindEnv("aws.region", "aws_region")
	v.BindEnv("aws.access_key_id", "aws_access_key_id")
	v.BindEnv("aws.secret_access_key", "aws_secret_access_key")
	v.BindEnv("aws.bucket", "aws_bucket")

	v.BindEnv("security.rate_limit", "security_rate_limit")

	//
	// Defaults
	//
	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost:8080")
	v.SetDefault("host.ssl", false)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.sslmode", "disable")

	v.SetDefault("jwt.expiration_seconds", 3600)
	v.SetDefault("jwt.verify_expiration_seconds", 86400)

	v.SetDefault("mail.port", 465)
	v.SetDefault("mail.workers", 2)
	v.SetDefault("mail.queue_size", 64)

	v.SetDefault("security.rate_limit", 20)

	if *configFile != "" {
		v.SetConfigFile(*configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if v.GetInt("host.port") <= 0 {
		return nil, errors.New("invalid port provided")
	}

	if v.GetString("db.user") == "" {
		return nil, errors.New("db user can't be empty")
	}

	if v.GetString("db.password") == "" {
		return nil, errors.New("db password can't be empty")
	}

	if v.GetString("db.name") == "" {
		return nil, errors.New("db name can't be empty")
	}

	if v.GetString("jwt.secret") == "" {
		return nil, errors.New("no JWT secret provided")
	}

	if v.GetInt("jwt.expiration_seconds") <= 0 {
		return nil, errors.New("jwt expiration must be bigger than 0")
	}

	if v.GetInt("jwt.verify_expiration_seconds") <= 0 {
		return nil, errors.New("jwt verify expiration must be bigger than 0")
	}

	if v.GetString("mail.host") == "" {
		return nil, errors.New("mail server can't be empty")
	}

	if v.GetString("mail.username") == "" {
		return nil, errors.New("mail username can't be empty")
	}

	if v.GetString("mail.password") == "" {
		return nil, errors.New("mail password can't be empty")
	}

	if v.GetString("aws.region") == "" {
		return nil, errors.New("aws region can't be empty")
	}

	if v.GetString("aws.access_key_id") == "" {
		return nil, errors.New("aws access key id can't be empty")
	}

	if v.GetString("aws.secret_access_key") == "" {
		return nil, errors.New("aws secret access key can't be empty")
	}

	if v.GetString("aws.bucket") == "" {
		return nil, errors.New("aws bucket can't be empty")
	}

	if v.GetInt("security.rate_limit") <= 0 {
		return nil, errors.New("rate limit must be bigger than 0")
	}

	from := v.GetString("mail.from")
	if from == "" {
		from = v.GetString("mail.username")
	}

	return &Config{
		Host: Host{
			Port:   v.GetInt("host.port"),
			Domain: v.GetString("host.domain"),
			SSL:    v.GetBool("host.ssl"),
		},
		DB: Database{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Name:     v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
		},
		JWT: JWT{
			Secret:    v.GetString("jwt.secret"),
			AccessTTL: time.Duration(v.GetInt("jwt.expiration_seconds")) * time.Second,
			VerifyTTL: time.Duration(v.GetInt("jwt.verify_expiration_seconds")) * time.Second,
		},
		Mail: Mail{
			Host:      v.GetString("mail.host"),
			Port:      v.GetInt("mail.port"),
			Username:  v.GetString("mail.username"),
			Password:  v.GetString("mail.password"),
			From:      from,
			Workers:   v.GetInt("mail.workers"),
			QueueSize: v.GetInt("mail.queue_size"),
		},
		AWS: AWS{
			Region:          v.GetString("aws.region"),
			AccessKeyID:     v.GetString("aws.access_key_id"),
			SecretAccessKey: v.GetString("aws.secret_access_key"),
			Bucket:          v.GetString("aws.bucket"),
		},
		RateLimit: v.GetInt("security.rate_limit"),
	}, nil
}
