package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Angger-Raka/aplikasi-absensi/internal/model"
	"github.com/Angger-Raka/aplikasi-absensi/internal/parser"
)

func newImportCmd(root *rootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "import --date YYYY-MM-DD FILE",
		Short: "Import an attendance log (.xls, .xlsx, .csv) for one date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(root)
			if err != nil {
				return err
			}
			defer a.close()

			res, err := a.svc.Import.ImportFromFile(cmd.Context(), args[0], date)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"imported %d entries for %s (batch %d): %d new records, %d updated, %d new employees, %d new departments\n",
				res.Total, res.AttendanceDate, res.BatchID,
				res.RecordsCreated, res.RecordsUpdated, res.EmployeesCreated, res.DepartmentsCreated)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "attendance date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newExtractCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "extract FILE",
		Short: "Print the entries extracted from a log as JSON without saving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := loadConfig(root)
			if err != nil {
				return err
			}
			defer logger.Sync()

			entries, err := parser.NewExtractor(logger).ExtractFile(args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		},
	}
}

type rangeFlags struct {
	from, to string
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "first date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&f.to, "to", "", "last date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

func newRecordsCmd(root *rootOptions) *cobra.Command {
	var rf rangeFlags

	cmd := &cobra.Command{
		Use:   "records --from YYYY-MM-DD --to YYYY-MM-DD",
		Short: "List attendance records in a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(root)
			if err != nil {
				return err
			}
			defer a.close()

			rows, err := a.svc.Attendance.ListRecords(cmd.Context(), rf.from, rf.to)
			if err != nil {
				return err
			}
			return writeRecords(cmd.OutOrStdout(), rows)
		},
	}
	rf.register(cmd)
	return cmd
}

func newRecapCmd(root *rootOptions) *cobra.Command {
	var rf rangeFlags

	cmd := &cobra.Command{
		Use:   "recap --from YYYY-MM-DD --to YYYY-MM-DD",
		Short: "Per-employee attendance totals for a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(root)
			if err != nil {
				return err
			}
			defer a.close()

			rows, err := a.svc.Report.Recap(cmd.Context(), rf.from, rf.to)
			if err != nil {
				return err
			}
			return writeRecap(cmd.OutOrStdout(), rows)
		},
	}
	rf.register(cmd)
	return cmd
}

func newViolationsCmd(root *rootOptions) *cobra.Command {
	var rf rangeFlags

	cmd := &cobra.Command{
		Use:   "violations --from YYYY-MM-DD --to YYYY-MM-DD",
		Short: "List violation notes in a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(root)
			if err != nil {
				return err
			}
			defer a.close()

			rows, err := a.svc.Report.Violations(cmd.Context(), rf.from, rf.to)
			if err != nil {
				return err
			}
			return writeViolations(cmd.OutOrStdout(), rows)
		},
	}
	rf.register(cmd)
	return cmd
}

func newDepartmentsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "departments",
		Short: "List departments with their employee counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(root)
			if err != nil {
				return err
			}
			defer a.close()

			depts, err := a.svc.Department.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDEPARTEMEN\tKARYAWAN")
			for _, d := range depts {
				fmt.Fprintf(tw, "%d\t%s\t%d\n", d.DeptID, d.Name, d.EmployeeCount)
			}
			return tw.Flush()
		},
	}
}

func newImportsCmd(root *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "imports",
		Short: "List the most recent committed imports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(root)
			if err != nil {
				return err
			}
			defer a.close()

			batches, err := a.svc.Import.ListImportBatches(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return writeBatches(cmd.OutOrStdout(), batches)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of batches to show")
	return cmd
}

// ── output ──

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func writeRecords(w io.Writer, rows []model.AttendanceView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTANGGAL\tNO\tNAMA\tDEPARTEMEN\tMASUK\tPULANG\tLEMBUR MASUK\tLEMBUR PULANG\tANOMALI\tSTATUS")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.RecordID, r.Date, r.WorkNo, r.EmployeeName, orDash(r.DepartmentName),
			orDash(r.ClockIn), orDash(r.ClockOut), orDash(r.OvertimeIn), orDash(r.OvertimeOut),
			orDash(r.AnomalyTimes), r.Status)
	}
	return tw.Flush()
}

func writeRecap(w io.Writer, rows []model.RecapRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NO\tNAMA\tDEPARTEMEN\tHARI MASUK\tPENDING\tANOMALI")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\n",
			r.WorkNo, r.EmployeeName, orDash(r.DepartmentName), r.DaysPresent, r.Pending, r.Anomalies)
	}
	return tw.Flush()
}

func writeViolations(w io.Writer, rows []model.ViolationView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTANGGAL\tNO\tNAMA\tDEPARTEMEN\tMULAI\tSELESAI\tCATATAN")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ViolationID, r.Date, r.WorkNo, r.EmployeeName, orDash(r.DepartmentName),
			r.StartTime, r.EndTime, r.Note)
	}
	return tw.Flush()
}

func writeBatches(w io.Writer, batches []model.ImportBatch) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BATCH\tTANGGAL\tDATA\tCHECKSUM\tFILE\tDIIMPOR")
	for _, b := range batches {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n",
			b.BatchID, b.Date, b.EntryCount, b.Checksum, b.FileName, b.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return tw.Flush()
}
