package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/school-management-system/internal/model"
)

type StudentRepository interface {
	FindAll(ctx context.Context) ([]*model.Student, error)
	FindByID(ctx context.Context, id string) (*model.Student, error)
	FindByIDFragment(ctx context.Context, fragment string) (*model.Student, error)
	Search(ctx context.Context, filter model.StudentFilter) ([]*model.Student, error)
	Create(ctx context.Context, student *model.Student) error
}

type studentRepository struct {
	db *sqlx.DB
}

func NewStudentRepository(db *sqlx.DB) StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = "student_id, name, class, hostel_status, bus_status, created_at"

func (r *studentRepository) FindAll(ctx context.Context) ([]*model.Student, error) {
	var students []*model.Student
	query := "SELECT " + studentColumns + " FROM students ORDER BY created_at ASC"
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) FindByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	query := "SELECT " + studentColumns + " FROM students WHERE student_id = ?"
	err := r.db.GetContext(ctx, &student, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &student, nil
}

// FindByIDFragment resolves a student whose id contains fragment as a
// substring, first row in storage order. Student logins depend on this
// exact semantics: ids that overlap as substrings collide, and the
// earliest insert wins. Kept as-is for credential compatibility.
func (r *studentRepository) FindByIDFragment(ctx context.Context, fragment string) (*model.Student, error) {
	var student model.Student
	query := "SELECT " + studentColumns + ` FROM students
		WHERE student_id LIKE ?
		ORDER BY rowid ASC
		LIMIT 1`
	err := r.db.GetContext(ctx, &student, query, "%"+fragment+"%")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &student, nil
}

// Search matches the term as a substring of name or class. SQLite LIKE
// is case-insensitive for ASCII, which is the store-dependent behavior
// callers get.
func (r *studentRepository) Search(ctx context.Context, filter model.StudentFilter) ([]*model.Student, error) {
	var students []*model.Student
	query := "SELECT " + studentColumns + ` FROM students
		WHERE name LIKE ? OR class LIKE ?
		ORDER BY rowid ASC`
	term := "%" + filter.Search + "%"
	if err := r.db.SelectContext(ctx, &students, query, term, term); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	query := `
		INSERT INTO students (student_id, name, class, hostel_status, bus_status, created_at)
		VALUES (:student_id, :name, :class, :hostel_status, :bus_status, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, student)
	return err
}

var _ StudentRepository = (*studentRepository)(nil)
