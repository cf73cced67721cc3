package f1

import "time"

// Columns each source must expose. Extra columns are ignored.
var (
	DriverColumns = []string{"driverId", "forename", "surname", "dob", "nationality"}
	ResultColumns = []string{"driverId", "raceId", "points", "positionOrder", "grid", "constructorId"}
	RaceColumns   = []string{"raceId", "year"}
)

// DNFSentinel is the grid/finish value from which a position is treated as
// "did not finish" in grid-vs-finish analysis.
const DNFSentinel = 20

// Driver is immutable reference data from drivers.csv.
type Driver struct {
	ID          int       `json:"id"`
	Ref         string    `json:"ref,omitempty"`
	Code        string    `json:"code,omitempty"`
	Forename    string    `json:"forename"`
	Surname     string    `json:"surname"`
	DOB         time.Time `json:"-"`
	Nationality string    `json:"nationality"`
}

// Name is "Forename Surname".
func (d Driver) Name() string {
	switch {
	case d.Forename == "":
		return d.Surname
	case d.Surname == "":
		return d.Forename
	}
	return d.Forename + " " + d.Surname
}

// Race is immutable reference data from races.csv.
type Race struct {
	ID    int
	Year  int
	Round int
	Name  string
}

// Result is one row of results.csv.
type Result struct {
	DriverID      int
	RaceID        int
	ConstructorID int
	Grid          int
	PositionOrder int
	Points        float64
}

// Record is a Result enriched with its Driver and Race attributes.
type Record struct {
	DriverID      int
	RaceID        int
	ConstructorID int
	Grid          int
	PositionOrder int
	Points        float64

	Year     int
	Round    int
	RaceName string

	Forename    string
	Surname     string
	DOB         time.Time
	Nationality string
}
