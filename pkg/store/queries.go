package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"registrar-hq/registrar/pkg/record"
)

// StudentNames returns the first and last name of every student.
func (s *Store) StudentNames(ctx context.Context) (record.ResultSet, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT first_name, last_name FROM Student`)
	if err != nil {
		return record.None(), fmt.Errorf("failed to query student names: %w", err)
	}
	defer rows.Close()

	var out []record.Record
	for rows.Next() {
		var first, last string
		if err := rows.Scan(&first, &last); err != nil {
			return record.None(), fmt.Errorf("failed to scan student row: %w", err)
		}
		out = append(out, record.New(
			record.Field{Name: "first_name", Value: first},
			record.Field{Name: "last_name", Value: last},
		))
	}
	if err := rows.Err(); err != nil {
		return record.None(), fmt.Errorf("failed to read student rows: %w", err)
	}
	return record.List(out), nil
}

// SubjectsForStudent returns the names of the courses a student is enrolled
// in. The lookup is two-step: enrollment rows yield course codes, then a
// second filtered query resolves the codes to course names. A code with no
// matching Course row is silently dropped.
func (s *Store) SubjectsForStudent(ctx context.Context, studentID string) (record.ResultSet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT course_code FROM StudentCourse WHERE student_id=?`, studentID)
	if err != nil {
		return record.None(), fmt.Errorf("failed to query enrollments for %q: %w", studentID, err)
	}
	defer rows.Close()

	var codes []any
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return record.None(), fmt.Errorf("failed to scan enrollment row: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return record.None(), fmt.Errorf("failed to read enrollment rows: %w", err)
	}
	if len(codes) == 0 {
		return record.List(nil), nil
	}

	query := fmt.Sprintf(
		`SELECT course_name FROM Course WHERE course_code IN (%s)`, placeholders(len(codes)))
	nameRows, err := s.db.QueryContext(ctx, query, codes...)
	if err != nil {
		return record.None(), fmt.Errorf("failed to query course names: %w", err)
	}
	defer nameRows.Close()

	var out []record.Record
	for nameRows.Next() {
		var name string
		if err := nameRows.Scan(&name); err != nil {
			return record.None(), fmt.Errorf("failed to scan course row: %w", err)
		}
		out = append(out, record.New(
			record.Field{Name: "course_name", Value: name},
		))
	}
	if err := nameRows.Err(); err != nil {
		return record.None(), fmt.Errorf("failed to read course rows: %w", err)
	}
	return record.List(out), nil
}

// AddressForStudentName returns the street and city for the student with the
// given first and last name. The lookup is two-step: the name resolves to an
// address ID, which resolves to the address row. Either step matching no row
// yields an empty result.
func (s *Store) AddressForStudentName(ctx context.Context, first, last string) (record.ResultSet, error) {
	var addressID int64
	err := s.db.QueryRowContext(ctx,
		`SELECT address_id FROM Student WHERE first_name=? AND last_name=?`,
		first, last).Scan(&addressID)
	if errors.Is(err, sql.ErrNoRows) {
		return record.None(), nil
	}
	if err != nil {
		return record.None(), fmt.Errorf("failed to query student %s %s: %w", first, last, err)
	}

	var street, city string
	err = s.db.QueryRowContext(ctx,
		`SELECT street, city FROM Address WHERE address_id=?`, addressID).Scan(&street, &city)
	if errors.Is(err, sql.ErrNoRows) {
		return record.None(), nil
	}
	if err != nil {
		return record.None(), fmt.Errorf("failed to query address %d: %w", addressID, err)
	}

	return record.One(record.New(
		record.Field{Name: "street", Value: street},
		record.Field{Name: "city", Value: city},
	)), nil
}

// ReviewsForStudent returns every review left for the given student.
func (s *Store) ReviewsForStudent(ctx context.Context, studentID string) (record.ResultSet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT course_code, completeness, efficiency, style, documentation, review_text
		 FROM Review WHERE student_id=?`, studentID)
	if err != nil {
		return record.None(), fmt.Errorf("failed to query reviews for %q: %w", studentID, err)
	}
	defer rows.Close()

	var out []record.Record
	for rows.Next() {
		var code, text string
		var completeness, efficiency, style, docScore int64
		if err := rows.Scan(&code, &completeness, &efficiency, &style, &docScore, &text); err != nil {
			return record.None(), fmt.Errorf("failed to scan review row: %w", err)
		}
		out = append(out, record.New(
			record.Field{Name: "course_code", Value: code},
			record.Field{Name: "completeness", Value: completeness},
			record.Field{Name: "efficiency", Value: efficiency},
			record.Field{Name: "style", Value: style},
			record.Field{Name: "documentation", Value: docScore},
			record.Field{Name: "review_text", Value: text},
		))
	}
	if err := rows.Err(); err != nil {
		return record.None(), fmt.Errorf("failed to read review rows: %w", err)
	}
	return record.List(out), nil
}

// CoursesForTeacher returns the courses taught by the given teacher. Each
// record carries the teacher ID alongside the course name.
func (s *Store) CoursesForTeacher(ctx context.Context, teacherID string) (record.ResultSet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT course_name FROM Course WHERE teacher_id=?`, teacherID)
	if err != nil {
		return record.None(), fmt.Errorf("failed to query courses for %q: %w", teacherID, err)
	}
	defer rows.Close()

	var out []record.Record
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return record.None(), fmt.Errorf("failed to scan course row: %w", err)
		}
		out = append(out, record.New(
			record.Field{Name: "teacher_id", Value: teacherID},
			record.Field{Name: "course_name", Value: name},
		))
	}
	if err := rows.Err(); err != nil {
		return record.None(), fmt.Errorf("failed to read course rows: %w", err)
	}
	return record.List(out), nil
}

// IncompleteEnrollments returns every enrollment that has not been
// completed, enriched with the student's details and the course name.
// Enrollments whose student or course row is missing are dropped.
func (s *Store) IncompleteEnrollments(ctx context.Context) (record.ResultSet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT student_id, course_code FROM StudentCourse WHERE is_complete = 0`)
	if err != nil {
		return record.None(), fmt.Errorf("failed to query incomplete enrollments: %w", err)
	}
	defer rows.Close()

	type enrollment struct {
		studentID  string
		courseCode string
	}
	var pending []enrollment
	for rows.Next() {
		var e enrollment
		if err := rows.Scan(&e.studentID, &e.courseCode); err != nil {
			return record.None(), fmt.Errorf("failed to scan enrollment row: %w", err)
		}
		pending = append(pending, e)
	}
	if err := rows.Err(); err != nil {
		return record.None(), fmt.Errorf("failed to read enrollment rows: %w", err)
	}

	var out []record.Record
	for _, e := range pending {
		rec, ok, err := s.enrichEnrollment(ctx, e.studentID, e.courseCode)
		if err != nil {
			return record.None(), err
		}
		if !ok {
			continue
		}
		out = append(out, rec)
	}
	return record.List(out), nil
}

// LowMarkEnrollments returns every enrollment with a mark of 30 or below,
// enriched like IncompleteEnrollments and carrying the mark. The threshold
// is a business rule carried over verbatim.
func (s *Store) LowMarkEnrollments(ctx context.Context) (record.ResultSet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT student_id, course_code, mark FROM StudentCourse WHERE mark <= 30`)
	if err != nil {
		return record.None(), fmt.Errorf("failed to query low-mark enrollments: %w", err)
	}
	defer rows.Close()

	type enrollment struct {
		studentID  string
		courseCode string
		mark       int64
	}
	var pending []enrollment
	for rows.Next() {
		var e enrollment
		if err := rows.Scan(&e.studentID, &e.courseCode, &e.mark); err != nil {
			return record.None(), fmt.Errorf("failed to scan enrollment row: %w", err)
		}
		pending = append(pending, e)
	}
	if err := rows.Err(); err != nil {
		return record.None(), fmt.Errorf("failed to read enrollment rows: %w", err)
	}

	var out []record.Record
	for _, e := range pending {
		rec, ok, err := s.enrichEnrollment(ctx, e.studentID, e.courseCode)
		if err != nil {
			return record.None(), err
		}
		if !ok {
			continue
		}
		out = append(out, append(rec, record.Field{Name: "mark", Value: e.mark}))
	}
	return record.List(out), nil
}

// enrichEnrollment resolves an enrollment's student details and course name.
// The boolean is false when either lookup misses, in which case the
// enrollment is dropped by the caller.
func (s *Store) enrichEnrollment(ctx context.Context, studentID, courseCode string) (record.Record, bool, error) {
	var first, last, email string
	err := s.db.QueryRowContext(ctx,
		`SELECT first_name, last_name, email FROM Student WHERE student_id=?`,
		studentID).Scan(&first, &last, &email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query student %q: %w", studentID, err)
	}

	var courseName string
	err = s.db.QueryRowContext(ctx,
		`SELECT course_name FROM Course WHERE course_code=?`, courseCode).Scan(&courseName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query course %q: %w", courseCode, err)
	}

	return record.New(
		record.Field{Name: "student_id", Value: studentID},
		record.Field{Name: "course_code", Value: courseCode},
		record.Field{Name: "first_name", Value: first},
		record.Field{Name: "last_name", Value: last},
		record.Field{Name: "email", Value: email},
		record.Field{Name: "course_name", Value: courseName},
	), true, nil
}

// placeholders builds a comma-separated list of n positional placeholders
// for variable-length IN clauses. Values are always bound by position.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
