package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/medgm/analytics-api/infrastructure/database/postgres"
	"github.com/medgm/analytics-api/internal/config"
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/pkg/log"
	"github.com/medgm/analytics-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// schema é aplicado em ordem e pode ser reexecutado
var schema = []struct {
	name string
	ddl  string
}{
	{
		name: "people",
		ddl: `CREATE TABLE IF NOT EXISTS people (
			id     VARCHAR(32) PRIMARY KEY,
			name   TEXT        NOT NULL,
			role   VARCHAR(32) NOT NULL,
			active BOOLEAN     NOT NULL DEFAULT TRUE
		)`,
	},
	{
		name: "sales",
		ddl: `CREATE TABLE IF NOT EXISTS sales (
			id           VARCHAR(32)    PRIMARY KEY,
			month        SMALLINT       NOT NULL CHECK (month BETWEEN 1 AND 12),
			year         SMALLINT       NOT NULL,
			occurred_on  DATE,
			client       TEXT           NOT NULL DEFAULT '',
			channel      TEXT           NOT NULL DEFAULT '',
			actor        TEXT           NOT NULL DEFAULT '',
			revenue_type VARCHAR(32)    NOT NULL DEFAULT '',
			product      TEXT           NOT NULL DEFAULT '',
			gross_amount NUMERIC(14, 2) NOT NULL DEFAULT 0,
			net_amount   NUMERIC(14, 2) NOT NULL DEFAULT 0,
			created_at   TIMESTAMPTZ    NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "financial_records",
		ddl: `CREATE TABLE IF NOT EXISTS financial_records (
			id          VARCHAR(32)    PRIMARY KEY,
			kind        VARCHAR(16)    NOT NULL,
			amount      NUMERIC(14, 2) NOT NULL CHECK (amount >= 0),
			month       SMALLINT       NOT NULL CHECK (month BETWEEN 1 AND 12),
			year        SMALLINT       NOT NULL,
			occurred_on DATE,
			status      VARCHAR(16)    NOT NULL,
			category    TEXT           NOT NULL DEFAULT '',
			cost_label  TEXT           NOT NULL DEFAULT '',
			cost_type   TEXT           NOT NULL DEFAULT '',
			cost_center TEXT           NOT NULL DEFAULT '',
			product     TEXT           NOT NULL DEFAULT '',
			description TEXT           NOT NULL DEFAULT '',
			sale_id     VARCHAR(32)    REFERENCES sales (id),
			created_at  TIMESTAMPTZ    NOT NULL DEFAULT NOW(),
			CONSTRAINT financial_records_sale_id_key UNIQUE (sale_id)
		)`,
	},
	{
		name: "financial_records_period_idx",
		ddl:  `CREATE INDEX IF NOT EXISTS financial_records_period_idx ON financial_records (year, month)`,
	},
	{
		name: "social_selling_metrics",
		ddl: `CREATE TABLE IF NOT EXISTS social_selling_metrics (
			id          VARCHAR(32) PRIMARY KEY,
			month       SMALLINT    NOT NULL CHECK (month BETWEEN 1 AND 12),
			year        SMALLINT    NOT NULL,
			actor       TEXT        NOT NULL DEFAULT '',
			occurred_on DATE,
			activations INTEGER     NOT NULL DEFAULT 0,
			conversions INTEGER     NOT NULL DEFAULT 0,
			leads       INTEGER     NOT NULL DEFAULT 0
		)`,
	},
	{
		name: "sdr_metrics",
		ddl: `CREATE TABLE IF NOT EXISTS sdr_metrics (
			id                 VARCHAR(32) PRIMARY KEY,
			month              SMALLINT    NOT NULL CHECK (month BETWEEN 1 AND 12),
			year               SMALLINT    NOT NULL,
			actor              TEXT        NOT NULL DEFAULT '',
			channel            TEXT        NOT NULL DEFAULT '',
			occurred_on        DATE,
			leads_in           INTEGER     NOT NULL DEFAULT 0,
			meetings_scheduled INTEGER     NOT NULL DEFAULT 0,
			meetings_held      INTEGER     NOT NULL DEFAULT 0
		)`,
	},
	{
		name: "closer_metrics",
		ddl: `CREATE TABLE IF NOT EXISTS closer_metrics (
			id              VARCHAR(32)    PRIMARY KEY,
			month           SMALLINT       NOT NULL CHECK (month BETWEEN 1 AND 12),
			year            SMALLINT       NOT NULL,
			actor           TEXT           NOT NULL DEFAULT '',
			channel         TEXT           NOT NULL DEFAULT '',
			occurred_on     DATE,
			calls_scheduled INTEGER        NOT NULL DEFAULT 0,
			calls_held      INTEGER        NOT NULL DEFAULT 0,
			sales           INTEGER        NOT NULL DEFAULT 0,
			booking         NUMERIC(14, 2) NOT NULL DEFAULT 0,
			gross_revenue   NUMERIC(14, 2) NOT NULL DEFAULT 0,
			net_revenue     NUMERIC(14, 2) NOT NULL DEFAULT 0
		)`,
	},
	{
		name: "goals",
		ddl: `CREATE TABLE IF NOT EXISTS goals (
			id                        VARCHAR(32)    PRIMARY KEY,
			month                     SMALLINT       NOT NULL CHECK (month BETWEEN 1 AND 12),
			year                      SMALLINT       NOT NULL,
			subject_kind              VARCHAR(16)    NOT NULL,
			person_id                 VARCHAR(32)    REFERENCES people (id),
			role                      VARCHAR(32),
			target_activations        INTEGER,
			target_leads              INTEGER,
			target_meetings_scheduled INTEGER,
			target_meetings_held      INTEGER,
			target_sales              INTEGER,
			target_revenue            NUMERIC(14, 2),
			created_at                TIMESTAMPTZ    NOT NULL DEFAULT NOW(),
			updated_at                TIMESTAMPTZ    NOT NULL DEFAULT NOW()
		)`,
	},
	{
		// Uma meta por sujeito e mês. A meta da empresa não tem pessoa.
		name: "goals_subject_period_key",
		ddl: `CREATE UNIQUE INDEX IF NOT EXISTS goals_subject_period_key
			ON goals (subject_kind, COALESCE(person_id, ''), month, year)`,
	},
	{
		name: "company_goals",
		ddl: `CREATE TABLE IF NOT EXISTS company_goals (
			year           SMALLINT       PRIMARY KEY,
			annual_revenue NUMERIC(16, 2) NOT NULL,
			annual_cash    NUMERIC(16, 2) NOT NULL,
			updated_at     TIMESTAMPTZ    NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "prior_balances",
		ddl: `CREATE TABLE IF NOT EXISTS prior_balances (
			month           SMALLINT       NOT NULL CHECK (month BETWEEN 1 AND 12),
			year            SMALLINT       NOT NULL,
			closing_balance NUMERIC(16, 2) NOT NULL,
			computed_at     TIMESTAMPTZ    NOT NULL DEFAULT NOW(),
			PRIMARY KEY (month, year)
		)`,
	},
}

func applySchema(ctx context.Context, tx *sql.Tx) error {
	for _, step := range schema {
		startTime := time.Now()
		if _, err := tx.ExecContext(ctx, step.ddl); err != nil {
			logrus.WithError(err).WithField("step", step.name).Error("Erro ao aplicar etapa do schema")
			return err
		}
		logrus.WithFields(logrus.Fields{
			"step":     step.name,
			"duration": time.Since(startTime).String(),
		}).Info("Etapa do schema aplicada")
	}
	return nil
}

// seedPeople cadastra as pessoas do arquivo JSON, ignorando nomes já existentes
func seedPeople(ctx context.Context, tx *sql.Tx, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var people []domain.Person
	if err := json.Unmarshal(content, &people); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO people (id, name, role, active)
		SELECT $1, $2, $3, $4
		WHERE NOT EXISTS (SELECT 1 FROM people WHERE name = $2)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	inserted, skipped := 0, 0
	for _, person := range people {
		if !person.Role.Valid() {
			logrus.WithFields(logrus.Fields{"name": person.Name, "role": person.Role}).Warn("Papel inválido, pessoa ignorada")
			skipped++
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			return err
		}

		result, err := stmt.ExecContext(ctx, id, person.Name, string(person.Role), true)
		if err != nil {
			return err
		}
		if affected, _ := result.RowsAffected(); affected == 0 {
			skipped++
			continue
		}
		inserted++
	}

	logrus.WithFields(logrus.Fields{"inserted": inserted, "skipped": skipped}).Info("Cadastro de pessoas concluído")
	return nil
}

func main() {
	peopleFile := flag.String("people", "", "arquivo JSON com as pessoas a cadastrar")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	if err := log.Setup(cfg.App.LogLevel); err != nil {
		logrus.WithError(err).Warn("Usando nível de log 'info'")
	}
	logrus.Info("Iniciando script de migração...")

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := applySchema(ctx, tx); err != nil {
			return err
		}
		if *peopleFile == "" {
			return nil
		}
		return seedPeople(ctx, tx, *peopleFile)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração abortada, nenhuma alteração aplicada")
	}

	logrus.Info("Migração concluída com sucesso")
}
