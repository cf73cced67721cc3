// Package f1test writes a small Ergast-shaped dataset for tests.
package f1test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/pitwall-cli/internal/f1"
)

// Driver ids and sizes of the fixture.
const (
	Hamilton          = 1
	Vettel            = 20
	MichaelSchumacher = 30
	MickSchumacher    = 854
	NoResultsDriver   = 99

	ResultRows    = 11
	JoinedRecords = 9
)

// DriversCSV has one driver (99) without results and two drivers sharing
// surname and code.
const DriversCSV = `driverId,driverRef,number,code,forename,surname,dob,nationality,url
1,hamilton,44,HAM,Lewis,Hamilton,1985-01-07,British,http://en.wikipedia.org/wiki/Lewis_Hamilton
20,vettel,5,VET,Sebastian,Vettel,1987-07-03,German,http://en.wikipedia.org/wiki/Sebastian_Vettel
30,michael_schumacher,\N,MSC,Michael,Schumacher,1969-01-03,German,http://en.wikipedia.org/wiki/Michael_Schumacher
854,mick_schumacher,47,MSC,Mick,Schumacher,1999-03-22,German,http://en.wikipedia.org/wiki/Mick_Schumacher
99,nobody,\N,\N,No,Results,\N,Martian,
`

// RacesCSV spans two seasons.
const RacesCSV = `raceId,year,round,circuitId,name,date
1001,2020,1,70,Austrian Grand Prix,2020-07-05
1002,2020,2,70,Styrian Grand Prix,2020-07-12
1003,2021,1,3,Bahrain Grand Prix,2021-03-28
1004,2021,2,21,Emilia Romagna Grand Prix,2021-04-18
`

// ResultsCSV holds nine joinable rows plus one unknown driver and one
// unknown race.
const ResultsCSV = `resultId,raceId,driverId,constructorId,number,grid,position,positionText,positionOrder,points,laps,statusId
1,1001,1,131,44,5,2,2,2,18,71,1
2,1002,1,131,44,1,1,1,1,25,71,1
3,1003,1,131,44,2,11,11,11,0,56,11
4,1001,20,6,5,3,1,1,1,25,71,1
5,1002,20,6,5,2,3,3,3,15,71,1
6,1003,20,6,5,20,1,1,1,25,56,1
7,1004,20,6,5,8,5,5,5,10,63,1
8,1004,30,6,\N,21,\N,R,22,0,10,4
9,1004,854,6,47,15,16,16,16,0,62,11
10,1001,777,1,9,4,4,4,4,12,71,1
11,9999,1,131,44,1,1,1,1,25,71,1
`

// Write stores the fixture CSVs in dir and returns their paths.
func Write(t testing.TB, dir string) f1.Sources {
	t.Helper()
	src := f1.Sources{
		Drivers: filepath.Join(dir, "drivers.csv"),
		Results: filepath.Join(dir, "results.csv"),
		Races:   filepath.Join(dir, "races.csv"),
	}
	for path, body := range map[string]string{
		src.Drivers: DriversCSV,
		src.Results: ResultsCSV,
		src.Races:   RacesCSV,
	} {
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return src
}

// Dataset writes the fixture into a temp dir and loads it.
func Dataset(t testing.TB) *f1.Dataset {
	t.Helper()
	src := Write(t, t.TempDir())
	ds, err := f1.Load(context.Background(), src)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return ds
}
