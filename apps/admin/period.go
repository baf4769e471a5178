package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trezcool/masomo-admin/core/schoolyear"
	"github.com/trezcool/masomo-admin/storage/remote"
)

func (cli *commandLine) periodAdmin(cmd *cobra.Command) (*schoolyear.Admin, error) {
	client, deps, err := cli.adminDeps(cmd)
	if err != nil {
		return nil, err
	}
	return schoolyear.NewAdmin(
		remote.NewSchoolYearRepository(client),
		remote.NewCourseRepository(client),
		remote.NewInstructorRepository(client),
		schoolyear.Years{First: cli.conf.Period.FirstYear, Span: cli.conf.Period.YearSpan},
		deps,
	)
}

func printPeriods(w io.Writer, rows ...schoolyear.Assignment) error {
	table := make([][]string, 0, len(rows))
	for _, asg := range rows {
		table = append(table, []string{
			strconv.Itoa(asg.ID),
			asg.CourseName,
			asg.InstructorName,
			strconv.Itoa(asg.Year),
		})
	}
	return printTable(w, []string{"ID", "COURSE", "INSTRUCTOR", "YEAR"}, table)
}

// periodFlags are the course and instructor references, ids or names, and the year of a period.
type periodFlags struct {
	course     string
	instructor string
	year       int
}

func (pf *periodFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pf.course, "course", "", "id or name of the course")
	cmd.Flags().StringVar(&pf.instructor, "instructor", "", "id, identification or name of the instructor")
	cmd.Flags().IntVar(&pf.year, "year", 0, "school year")
}

// apply edits `form` with the flags set on `cmd`; references are resolved against the loaded lists.
func (pf *periodFlags) apply(cmd *cobra.Command, a *schoolyear.Admin, form *schoolyear.Form) error {
	if cmd.Flags().Changed("course") {
		id, err := a.CourseID(pf.course)
		if err != nil {
			return err
		}
		form.CourseID = id
	}
	if cmd.Flags().Changed("instructor") {
		id, err := a.InstructorID(pf.instructor)
		if err != nil {
			return err
		}
		form.InstructorID = id
	}
	if cmd.Flags().Changed("year") {
		form.Year = pf.year
	}
	return nil
}

func (cli *commandLine) periodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "period",
		Aliases: []string{"schoolyear"},
		Short:   "Manage the assignments of instructors to courses per school year",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cli.periodAdmin(cmd)
			if err != nil {
				return err
			}
			if err := a.Load(cmd.Context()); err != nil {
				return err
			}
			return printPeriods(cmd.OutOrStdout(), a.Rows()...)
		},
	}

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := cli.periodAdmin(cmd)
			if err != nil {
				return err
			}
			asg, err := a.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printPeriods(cmd.OutOrStdout(), asg)
		},
	}

	years := &cobra.Command{
		Use:   "years",
		Short: "List the school years a period can be assigned to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cli.periodAdmin(cmd)
			if err != nil {
				return err
			}
			for _, year := range a.Years() {
				fmt.Fprintln(cmd.OutOrStdout(), year)
			}
			return nil
		},
	}

	var createFlags periodFlags
	create := &cobra.Command{
		Use:   "create",
		Short: "Assign an instructor to a course for a school year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cli.periodAdmin(cmd)
			if err != nil {
				return err
			}
			if err := a.Load(cmd.Context()); err != nil {
				return err
			}
			if err := a.BeginCreate(); err != nil {
				return err
			}

			var form schoolyear.Form
			if err := createFlags.apply(cmd, a, &form); err != nil {
				_ = a.Cancel()
				return err
			}
			_ = a.Edit(func(f *schoolyear.Form) { *f = form })
			asg, err := a.Save(cmd.Context())
			if err != nil {
				return err
			}
			return printPeriods(cmd.OutOrStdout(), asg)
		},
	}
	createFlags.register(create)

	var updateFlags periodFlags
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Update a period; omitted flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := cli.periodAdmin(cmd)
			if err != nil {
				return err
			}
			if err := a.Load(cmd.Context()); err != nil {
				return err
			}
			if err := a.BeginEdit(id); err != nil {
				return err
			}

			form := a.Form()
			if err := updateFlags.apply(cmd, a, &form); err != nil {
				_ = a.Cancel()
				return err
			}
			_ = a.Edit(func(f *schoolyear.Form) { *f = form })
			asg, err := a.Save(cmd.Context())
			if err != nil {
				return err
			}
			return printPeriods(cmd.OutOrStdout(), asg)
		},
	}
	updateFlags.register(update)

	var yes bool
	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := confirm(cmd, "Delete period "+args[0]+"?", yes); err != nil {
				return err
			}
			a, err := cli.periodAdmin(cmd)
			if err != nil {
				return err
			}
			return a.Delete(cmd.Context(), id)
		},
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	cmd.AddCommand(list, get, years, create, update, del)
	return cmd
}
