package main

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trezcool/masomo-admin/core/course"
	"github.com/trezcool/masomo-admin/storage/remote"
)

func (cli *commandLine) courseAdmin(cmd *cobra.Command) (*course.Admin, error) {
	client, deps, err := cli.adminDeps(cmd)
	if err != nil {
		return nil, err
	}
	return course.NewAdmin(remote.NewCourseRepository(client), deps)
}

func printCourses(w io.Writer, courses ...course.Course) error {
	rows := make([][]string, 0, len(courses))
	for _, crs := range courses {
		rows = append(rows, []string{strconv.Itoa(crs.ID), crs.Name, crs.Description.String})
	}
	return printTable(w, []string{"ID", "NAME", "DESCRIPTION"}, rows)
}

func (cli *commandLine) courseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cli.courseAdmin(cmd)
			if err != nil {
				return err
			}
			if err := a.Load(cmd.Context()); err != nil {
				return err
			}
			return printCourses(cmd.OutOrStdout(), a.Rows()...)
		},
	}

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := cli.courseAdmin(cmd)
			if err != nil {
				return err
			}
			crs, err := a.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printCourses(cmd.OutOrStdout(), crs)
		},
	}

	var name, desc string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cli.courseAdmin(cmd)
			if err != nil {
				return err
			}
			if err := a.BeginCreate(); err != nil {
				return err
			}
			_ = a.Edit(func(form *course.Form) {
				form.Name = name
				form.Description = desc
			})
			crs, err := a.Save(cmd.Context())
			if err != nil {
				return err
			}
			return printCourses(cmd.OutOrStdout(), crs)
		},
	}
	create.Flags().StringVar(&name, "name", "", "name of the course")
	create.Flags().StringVar(&desc, "description", "", "description of the course")

	update := &cobra.Command{
		Use:   "update ID",
		Short: "Update a course; omitted flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := cli.courseAdmin(cmd)
			if err != nil {
				return err
			}
			if err := a.Load(cmd.Context()); err != nil {
				return err
			}
			if err := a.BeginEdit(id); err != nil {
				return err
			}
			_ = a.Edit(func(form *course.Form) {
				if cmd.Flags().Changed("name") {
					form.Name = name
				}
				if cmd.Flags().Changed("description") {
					form.Description = desc
				}
			})
			crs, err := a.Save(cmd.Context())
			if err != nil {
				return err
			}
			return printCourses(cmd.OutOrStdout(), crs)
		},
	}
	update.Flags().StringVar(&name, "name", "", "name of the course")
	update.Flags().StringVar(&desc, "description", "", "description of the course, empty to remove it")

	var yes bool
	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a course and its periods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := confirm(cmd, "Delete course "+args[0]+"?", yes); err != nil {
				return err
			}
			a, err := cli.courseAdmin(cmd)
			if err != nil {
				return err
			}
			return a.Delete(cmd.Context(), id)
		},
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	cmd.AddCommand(list, get, create, update, del)
	return cmd
}
