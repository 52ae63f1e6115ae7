package parser

import "strconv"

// NotAvailable marks a time slot the log did not provide.
// It never leaves the extractor's output; the sync engine turns it into NULL.
const NotAvailable = "N/A"

// Columns is the field order of the extractor output.
var Columns = []string{
	"No", "Nama", "Departemen", "Jam Masuk", "Jam Pulang",
	"Masuk Lembur", "Pulang Lembur", "Waktu Anomali",
}

// Entry is one extracted attendance block.
type Entry struct {
	WorkNo       int    `json:"No"`
	Name         string `json:"Nama"`
	Department   string `json:"Departemen"`
	ClockIn      string `json:"Jam Masuk"`
	ClockOut     string `json:"Jam Pulang"`
	OvertimeIn   string `json:"Masuk Lembur"`
	OvertimeOut  string `json:"Pulang Lembur"`
	AnomalyTimes string `json:"Waktu Anomali"`
}

// Record returns the entry as strings in Columns order.
func (e Entry) Record() []string {
	return []string{
		strconv.Itoa(e.WorkNo), e.Name, e.Department, e.ClockIn, e.ClockOut,
		e.OvertimeIn, e.OvertimeOut, e.AnomalyTimes,
	}
}
