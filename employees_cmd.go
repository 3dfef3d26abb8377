package main

import (
	"fmt"
	"text/tabwriter"

	"employee-admin/internal/employee"
	"employee-admin/internal/printview"

	"github.com/spf13/cobra"
)

var (
	filterSearch string
	filterGender string
	filterStatus string
)

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Inspect the stored employees",
}

var employeesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees and the summary counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := criteriaFromFlags()
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		defer a.Logger.Sync()

		out := cmd.OutOrStdout()
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tGENDER\tDOB\tSTATE\tSTATUS")
		for _, e := range a.Employees.Filter(criteria) {
			status := "Inactive"
			if e.IsActive {
				status = "Active"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Gender, e.DOB, e.State, status)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		s := a.Employees.Summary()
		fmt.Fprintf(out, "\nTotal: %d  Active: %d  Inactive: %d\n", s.Total, s.Active, s.Inactive)
		return nil
	},
}

var employeesPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Write the printable employee table as HTML to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := criteriaFromFlags()
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		defer a.Logger.Sync()

		return printview.Render(cmd.OutOrStdout(), a.Employees.Filter(criteria))
	},
}

func criteriaFromFlags() (employee.Criteria, error) {
	return employee.ParseCriteria(filterSearch, filterGender, filterStatus)
}

func init() {
	for _, c := range []*cobra.Command{employeesListCmd, employeesPrintCmd} {
		c.Flags().StringVar(&filterSearch, "search", "", "name substring (case-insensitive)")
		c.Flags().StringVar(&filterGender, "gender", "", "Male or Female")
		c.Flags().StringVar(&filterStatus, "status", "", "active or inactive")
		employeesCmd.AddCommand(c)
	}
}
