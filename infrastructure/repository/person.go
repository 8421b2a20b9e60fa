package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/medgm/analytics-api/infrastructure/database/postgres"
	"github.com/medgm/analytics-api/internal/domain"
)

type PersonRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Person, error)
	ListActive(ctx context.Context) ([]domain.Person, error)
}

type personRepository struct {
	conn *postgres.Connection
}

func NewPersonRepository(conn *postgres.Connection) PersonRepository {
	return &personRepository{
		conn: conn,
	}
}

func (r *personRepository) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	query, args, err := squirrel.
		Select("p.id", "p.name", "p.role", "p.active").
		From("people p").
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	person := &domain.Person{}
	var role string
	err = r.conn.QueryRow(ctx, query, args...).Scan(&person.ID, &person.Name, &role, &person.Active)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear pessoa: %w", err)
	}
	person.Role = domain.Role(role)

	return person, nil
}

func (r *personRepository) ListActive(ctx context.Context) ([]domain.Person, error) {
	query, args, err := squirrel.
		Select("p.id", "p.name", "p.role", "p.active").
		From("people p").
		Where(squirrel.Eq{"p.active": true}).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	people := make([]domain.Person, 0)
	for rows.Next() {
		var person domain.Person
		var role string
		if err := rows.Scan(&person.ID, &person.Name, &role, &person.Active); err != nil {
			return nil, fmt.Errorf("erro ao escanear pessoa: %w", err)
		}
		person.Role = domain.Role(role)
		people = append(people, person)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return people, nil
}
