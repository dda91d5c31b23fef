package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	"github.com/LBaravalle/payroll_engine_app/internal/utils"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Service credential for the payroll operator account. The hash is
	// derived at load time; the plaintext never leaves this function.
	AuthUser         string
	AuthPasswordHash []byte

	Policy       domain.PayPolicy
	Chart        domain.ChartOfAccounts
	ExportWidths domain.ExportFieldWidths
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "payroll-engine-app")
	viper.SetDefault("AUTH_USER", "payroll-operator")
	viper.SetDefault("AUTH_PASSWORD", "")

	// Statutory and agreement rates, fractions of 1.
	viper.SetDefault("RETIREMENT_RATE", "0.11")
	viper.SetDefault("WELFARE_RATE", "0.03")
	viper.SetDefault("DEFAULT_HEALTH_RATE", "0.03")
	viper.SetDefault("DEFAULT_UNION_RATE", "0.025")
	viper.SetDefault("SENIORITY_RATE_PER_YEAR", "0.01")
	viper.SetDefault("ATTENDANCE_BONUS_RATE", "0.0833")
	viper.SetDefault("EMPLOYER_CHARGE_RATE", "0.18")
	viper.SetDefault("OVERTIME_TIER1_MONTHLY_CAP", "30")
	viper.SetDefault("FALLBACK_OVERTIME_TIER1_RATE", "1.5")
	viper.SetDefault("FALLBACK_OVERTIME_TIER2_RATE", "2")
	viper.SetDefault("PRORATE_STANDARD_HOURS", false)
	viper.SetDefault("FRACTIONAL_SENIORITY", false)

	// Chart of accounts for the generated payroll accrual entry.
	viper.SetDefault("ACCT_WAGES_EXPENSE", "641000")
	viper.SetDefault("ACCT_WAGES_EXPENSE_DESC", "Sueldos y jornales")
	viper.SetDefault("ACCT_NON_REMUNERATIVE_EXPENSE", "641100")
	viper.SetDefault("ACCT_NON_REMUNERATIVE_EXPENSE_DESC", "Asignaciones no remunerativas")
	viper.SetDefault("ACCT_EMPLOYER_CHARGES_EXPENSE", "642000")
	viper.SetDefault("ACCT_EMPLOYER_CHARGES_EXPENSE_DESC", "Cargas sociales")
	viper.SetDefault("ACCT_WITHHOLDINGS_PAYABLE", "248000")
	viper.SetDefault("ACCT_WITHHOLDINGS_PAYABLE_DESC", "Retenciones a depositar")
	viper.SetDefault("ACCT_WAGES_PAYABLE", "246000")
	viper.SetDefault("ACCT_WAGES_PAYABLE_DESC", "Sueldos a pagar")
	viper.SetDefault("ACCT_EMPLOYER_CHARGES_PAYABLE", "248100")
	viper.SetDefault("ACCT_EMPLOYER_CHARGES_PAYABLE_DESC", "Cargas sociales a depositar")

	viper.SetDefault("EXPORT_WIDTH_ACCOUNT", 10)
	viper.SetDefault("EXPORT_WIDTH_DESCRIPTION", 30)
	viper.SetDefault("EXPORT_WIDTH_AMOUNT", 15)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		log.Printf("Warning: Invalid JWT_EXPIRY_DURATION ('%s'). Defaulting to 1h.\n", jwtExpiryStr)
		jwtExpiry = time.Hour
	}
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AuthUser = viper.GetString("AUTH_USER")
	authPassword := viper.GetString("AUTH_PASSWORD")
	if authPassword == "" {
		log.Println("Warning: AUTH_PASSWORD environment variable not set. Login will be rejected.")
	} else {
		hash, err := utils.HashPassword(authPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash AUTH_PASSWORD: %w", err)
		}
		cfg.AuthPasswordHash = hash
	}

	cfg.Policy = domain.PayPolicy{
		SeniorityRatePerYear:      decimalFromEnv("SENIORITY_RATE_PER_YEAR"),
		AttendanceBonusRate:       decimalFromEnv("ATTENDANCE_BONUS_RATE"),
		RetirementRate:            decimalFromEnv("RETIREMENT_RATE"),
		WelfareRate:               decimalFromEnv("WELFARE_RATE"),
		DefaultHealthRate:         decimalFromEnv("DEFAULT_HEALTH_RATE"),
		DefaultUnionRate:          decimalFromEnv("DEFAULT_UNION_RATE"),
		OvertimeTier1MonthlyCap:   decimalFromEnv("OVERTIME_TIER1_MONTHLY_CAP"),
		FallbackOvertimeTier1Rate: decimalFromEnv("FALLBACK_OVERTIME_TIER1_RATE"),
		FallbackOvertimeTier2Rate: decimalFromEnv("FALLBACK_OVERTIME_TIER2_RATE"),
		ProrateStandardHours:      viper.GetBool("PRORATE_STANDARD_HOURS"),
		FractionalSeniority:       viper.GetBool("FRACTIONAL_SENIORITY"),
	}

	cfg.Chart = domain.ChartOfAccounts{
		WagesExpense:           ledgerAccountFromEnv("ACCT_WAGES_EXPENSE"),
		NonRemunerativeExpense: ledgerAccountFromEnv("ACCT_NON_REMUNERATIVE_EXPENSE"),
		EmployerChargesExpense: ledgerAccountFromEnv("ACCT_EMPLOYER_CHARGES_EXPENSE"),
		WithholdingsPayable:    ledgerAccountFromEnv("ACCT_WITHHOLDINGS_PAYABLE"),
		WagesPayable:           ledgerAccountFromEnv("ACCT_WAGES_PAYABLE"),
		EmployerChargesPayable: ledgerAccountFromEnv("ACCT_EMPLOYER_CHARGES_PAYABLE"),
		EmployerChargeRate:     decimalFromEnv("EMPLOYER_CHARGE_RATE"),
	}

	cfg.ExportWidths = domain.ExportFieldWidths{
		Account:     viper.GetInt("EXPORT_WIDTH_ACCOUNT"),
		Description: viper.GetInt("EXPORT_WIDTH_DESCRIPTION"),
		Amount:      viper.GetInt("EXPORT_WIDTH_AMOUNT"),
	}

	return cfg, nil
}

// decimalFromEnv reads a decimal setting, falling back to zero with a warning
// on malformed values. Defaults are registered before this runs, so a zero
// here means the operator set something unparsable.
func decimalFromEnv(key string) decimal.Decimal {
	raw := viper.GetString(key)
	value, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to 0.\n", key, raw)
		return decimal.Zero
	}
	return value
}

func ledgerAccountFromEnv(key string) domain.LedgerAccount {
	return domain.LedgerAccount{
		Code:        viper.GetString(key),
		Description: viper.GetString(key + "_DESC"),
	}
}
