package main

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trezcool/masomo-admin/core/instructor"
	"github.com/trezcool/masomo-admin/storage/remote"
)

func (cli *commandLine) instructorAdmin(cmd *cobra.Command) (*instructor.Admin, error) {
	client, deps, err := cli.adminDeps(cmd)
	if err != nil {
		return nil, err
	}
	return instructor.NewAdmin(remote.NewInstructorRepository(client), deps)
}

func printInstructors(w io.Writer, insts ...instructor.Instructor) error {
	rows := make([][]string, 0, len(insts))
	for _, inst := range insts {
		rows = append(rows, []string{strconv.Itoa(inst.ID), inst.Identification, inst.Name})
	}
	return printTable(w, []string{"ID", "IDENTIFICATION", "NAME"}, rows)
}

func (cli *commandLine) instructorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instructor",
		Short: "Manage instructors",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every instructor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cli.instructorAdmin(cmd)
			if err != nil {
				return err
			}
			if err := a.Load(cmd.Context()); err != nil {
				return err
			}
			return printInstructors(cmd.OutOrStdout(), a.Rows()...)
		},
	}

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one instructor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := cli.instructorAdmin(cmd)
			if err != nil {
				return err
			}
			inst, err := a.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printInstructors(cmd.OutOrStdout(), inst)
		},
	}

	var identification, name string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an instructor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cli.instructorAdmin(cmd)
			if err != nil {
				return err
			}
			if err := a.BeginCreate(); err != nil {
				return err
			}
			_ = a.Edit(func(form *instructor.Form) {
				form.Identification = identification
				form.Name = name
			})
			inst, err := a.Save(cmd.Context())
			if err != nil {
				return err
			}
			return printInstructors(cmd.OutOrStdout(), inst)
		},
	}
	create.Flags().StringVar(&identification, "identification", "", "identification number of the instructor")
	create.Flags().StringVar(&name, "name", "", "name of the instructor")

	update := &cobra.Command{
		Use:   "update ID",
		Short: "Update an instructor; omitted flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := cli.instructorAdmin(cmd)
			if err != nil {
				return err
			}
			if err := a.Load(cmd.Context()); err != nil {
				return err
			}
			if err := a.BeginEdit(id); err != nil {
				return err
			}
			_ = a.Edit(func(form *instructor.Form) {
				if cmd.Flags().Changed("identification") {
					form.Identification = identification
				}
				if cmd.Flags().Changed("name") {
					form.Name = name
				}
			})
			inst, err := a.Save(cmd.Context())
			if err != nil {
				return err
			}
			return printInstructors(cmd.OutOrStdout(), inst)
		},
	}
	update.Flags().StringVar(&identification, "identification", "", "identification number of the instructor")
	update.Flags().StringVar(&name, "name", "", "name of the instructor")

	var yes bool
	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an instructor and their periods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := confirm(cmd, "Delete instructor "+args[0]+"?", yes); err != nil {
				return err
			}
			a, err := cli.instructorAdmin(cmd)
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
