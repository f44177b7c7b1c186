package shell

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"registrar-hq/registrar/pkg/cli"
	"registrar-hq/registrar/pkg/export"
	"registrar-hq/registrar/pkg/record"
)

// viewAllStudents lists every student's first and last name.
func (sh *Shell) viewAllStudents(ctx context.Context) error {
	rs, err := sh.store.StudentNames(ctx)
	if err != nil {
		return err
	}
	if rs.Empty() {
		fmt.Fprintln(sh.out, "\nNo students found.")
		return nil
	}

	fmt.Fprintln(sh.out, "\nStudent names and surnames:")
	fmt.Fprintln(sh.out)
	for i, rec := range rs.Records() {
		fmt.Fprintf(sh.out, "%d. %s %s\n", i+1, rec.String("first_name"), rec.String("last_name"))
	}
	return sh.offerToStore(rs)
}

// viewSubjectsByStudent prompts for a student ID and lists the subjects
// that student is enrolled in, re-prompting on unknown IDs.
func (sh *Shell) viewSubjectsByStudent(ctx context.Context) error {
	for {
		id, err := sh.promptLine("\nEnter student ID: ")
		if err != nil {
			return err
		}
		id = strings.ToUpper(id)

		rs, err := sh.store.SubjectsForStudent(ctx, id)
		if err != nil {
			return err
		}
		if rs.Empty() {
			fmt.Fprintf(sh.out, "\nNo subjects found for student ID %s. Please try again.\n", id)
			back, err := sh.backToMenu()
			if err != nil {
				return err
			}
			if back {
				return nil
			}
			continue
		}

		fmt.Fprintln(sh.out, "\nSubjects taken by the student:")
		for _, rec := range rs.Records() {
			fmt.Fprintf(sh.out, "\nCourse name: %s\n", rec.String("course_name"))
		}
		return sh.offerToStore(rs)
	}
}

// lookupAddressByName prompts for a student's first and last name and shows
// their address.
func (sh *Shell) lookupAddressByName(ctx context.Context) error {
	for {
		first, err := sh.promptLine("Enter first name: ")
		if err != nil {
			return err
		}
		last, err := sh.promptLine("Enter surname: ")
		if err != nil {
			return err
		}
		first = capitalize(first)
		last = capitalize(last)

		rs, err := sh.store.AddressForStudentName(ctx, first, last)
		if err != nil {
			return err
		}
		if rs.Empty() {
			fmt.Fprintf(sh.out, "\nNo address found for %s %s. Please try again.\n", first, last)
			back, err := sh.backToMenu()
			if err != nil {
				return err
			}
			if back {
				return nil
			}
			continue
		}

		fmt.Fprintln(sh.out, "\nAddress:")
		fmt.Fprintln(sh.out)
		if err := cli.RenderRecord(sh.out, rs.Record()); err != nil {
			return err
		}
		return sh.offerToStore(rs)
	}
}

// listReviewsByStudent prompts for a student ID and lists every review left
// for that student.
func (sh *Shell) listReviewsByStudent(ctx context.Context) error {
	for {
		id, err := sh.promptLine("Enter student ID: ")
		if err != nil {
			return err
		}
		id = strings.ToUpper(id)

		rs, err := sh.store.ReviewsForStudent(ctx, id)
		if err != nil {
			return err
		}
		if rs.Empty() {
			fmt.Fprintf(sh.out, "\nNo reviews found for student with ID %s. Please try again.\n", id)
			back, err := sh.backToMenu()
			if err != nil {
				return err
			}
			if back {
				return nil
			}
			continue
		}

		fmt.Fprintf(sh.out, "\nReviews for student with ID %s:\n(NB: Ratings are out of 4)\n\n", id)
		if err := cli.RenderResultSet(sh.out, rs); err != nil {
			return err
		}
		return sh.offerToStore(rs)
	}
}

// listCoursesByTeacher prompts for a teacher ID and lists the courses that
// teacher gives.
func (sh *Shell) listCoursesByTeacher(ctx context.Context) error {
	for {
		id, err := sh.promptLine("Enter teacher ID: ")
		if err != nil {
			return err
		}
		id = strings.ToUpper(id)

		rs, err := sh.store.CoursesForTeacher(ctx, id)
		if err != nil {
			return err
		}
		if rs.Empty() {
			fmt.Fprintf(sh.out, "\nNo courses found for teacher with ID %s. Please try again.\n", id)
			back, err := sh.backToMenu()
			if err != nil {
				return err
			}
			if back {
				return nil
			}
			continue
		}

		fmt.Fprintf(sh.out, "\nCourses offered by teacher with ID %s:\n", id)
		for _, rec := range rs.Records() {
			fmt.Fprintf(sh.out, "\nCourse name: %s\n", rec.String("course_name"))
		}
		return sh.offerToStore(rs)
	}
}

// listIncomplete lists every student who has not completed their course.
func (sh *Shell) listIncomplete(ctx context.Context) error {
	rs, err := sh.store.IncompleteEnrollments(ctx)
	if err != nil {
		return err
	}
	if rs.Empty() {
		fmt.Fprintln(sh.out, "\nNo students have incomplete courses.")
		return nil
	}

	fmt.Fprintln(sh.out, "\nStudents who have not completed their courses:")
	fmt.Fprintln(sh.out)
	for i, rec := range rs.Records() {
		fmt.Fprintf(sh.out, "%d. %s %s %s (%s) - Course: %s\n",
			i+1,
			rec.String("student_id"),
			rec.String("first_name"),
			rec.String("last_name"),
			rec.String("email"),
			rec.String("course_name"),
		)
	}
	return sh.offerToStore(rs)
}

// listLowMarks lists every student with a completed course mark of 30 or
// below.
func (sh *Shell) listLowMarks(ctx context.Context) error {
	rs, err := sh.store.LowMarkEnrollments(ctx)
	if err != nil {
		return err
	}
	if rs.Empty() {
		fmt.Fprintln(sh.out, "\nNo students have a mark of 30 or below.")
		return nil
	}

	fmt.Fprintln(sh.out, "\nStudents who have a mark of 30 or below:")
	fmt.Fprintln(sh.out)
	for i, rec := range rs.Records() {
		fmt.Fprintf(sh.out, "%d. %s %s %s (%s) - Course: %s - Mark: %s\n",
			i+1,
			rec.String("student_id"),
			rec.String("first_name"),
			rec.String("last_name"),
			rec.String("email"),
			rec.String("course_name"),
			rec.String("mark"),
		)
	}
	return sh.offerToStore(rs)
}

// offerToStore asks whether to save the result as a file and, if so, loops
// on filenames until one with a valid .json or .xml extension is given.
// File contents overwrite any previous file with the same name.
func (sh *Shell) offerToStore(rs record.ResultSet) error {
	for {
		fmt.Fprintln(sh.out, "\nWould you like to save this result as a file?")
		choice, err := sh.promptInt("\nEnter 1 for Yes or 2 for No: ")
		if err != nil {
			var inputErr *cli.InputError
			if errors.As(err, &inputErr) {
				fmt.Fprintln(sh.out, "\nInvalid input. Please enter a valid number (1 for Yes, 2 for No).")
				continue
			}
			return err
		}

		switch choice {
		case 1:
			return sh.storeResult(rs)
		case 2:
			fmt.Fprintln(sh.out, "\nNo file will be saved.")
			return nil
		default:
			fmt.Fprintln(sh.out, "\nInvalid choice. Please enter 1 for Yes or 2 for No.")
		}
	}
}

// storeResult prompts for a filename and exports the result, re-prompting
// while the filename lacks a base name or a supported extension.
func (sh *Shell) storeResult(rs record.ResultSet) error {
	for {
		filename, err := sh.promptLine("\nSpecify filename. Must end in .xml or .json: ")
		if err != nil {
			return err
		}

		target := filename
		if !filepath.IsAbs(target) && sh.exportDir != "" {
			target = filepath.Join(sh.exportDir, filename)
		}

		err = export.Export(rs, target)
		var formatErr *export.FormatError
		if errors.As(err, &formatErr) {
			fmt.Fprintln(sh.out, "\nInvalid filename. Please enter a valid filename with a base name and .xml or .json extension.")
			continue
		}
		if err != nil {
			sh.logger.Error("export failed", "file", target, "error", err)
			fmt.Fprintf(sh.out, "\nCould not write %s: %v\n", target, err)
			return nil
		}

		fmt.Fprintf(sh.out, "\nData successfully written to %s\n", target)
		return nil
	}
}
