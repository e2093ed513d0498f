package seed

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaultDataset(t *testing.T) {
	data := Default()
	if len(data.Games) != 3 || data.TeamCount() != 6 {
		t.Fatalf("expected 3 games and 6 teams, got %d and %d", len(data.Games), data.TeamCount())
	}
	last := data.Games[2].Teams[1]
	if last != (TeamDef{Name: "Knicks", PlayerNames: "Bryant, Dave", Score: 786}) {
		t.Fatalf("unexpected last team %#v", last)
	}
}

func TestLoadYAMLMatchesDefault(t *testing.T) {
	path := writeFile(t, "games.yaml", `games:
  - teams:
      - {name: Bulls, player_names: "Danny, Benn", score: 812}
      - {name: Spurs, player_names: "Logan, Ben", score: 56}
  - teams:
      - {name: Celtics, player_names: "Brian, Paul", score: 34}
      - {name: Spurs, player_names: "Rachel, Helen", score: 10000}
  - teams:
      - {name: Lakers, player_names: "Nick, Liz", score: 92}
      - {name: Knicks, player_names: "Bryant, Dave", score: 786}
`)
	data, err := Load(path)
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if !reflect.DeepEqual(data, Default()) {
		t.Fatalf("yaml dataset differs from default: %#v", data)
	}
}

func TestLoadCSVGroupsByGame(t *testing.T) {
	path := writeFile(t, "games.csv", `game,name,player_names,score
b,Lakers,"Nick, Liz",92
a,Bulls,"Danny, Benn",812
b,Knicks,"Bryant, Dave",786

a,Spurs,"Logan, Ben",56
`)
	data, err := Load(path)
	if err != nil {
		t.Fatalf("load csv: %v", err)
	}
	want := Dataset{Games: []GameDef{
		{Teams: []TeamDef{
			{Name: "Lakers", PlayerNames: "Nick, Liz", Score: 92},
			{Name: "Knicks", PlayerNames: "Bryant, Dave", Score: 786},
		}},
		{Teams: []TeamDef{
			{Name: "Bulls", PlayerNames: "Danny, Benn", Score: 812},
			{Name: "Spurs", PlayerNames: "Logan, Ben", Score: 56},
		}},
	}}
	if !reflect.DeepEqual(data, want) {
		t.Fatalf("unexpected dataset %#v", data)
	}
}

func TestLoadCSVRejectsBadScore(t *testing.T) {
	path := writeFile(t, "games.csv", "game,name,player_names,score\n1,Bulls,Danny,lots\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line 2 score error, got %v", err)
	}
}

func TestLoadCSVRejectsShortRow(t *testing.T) {
	path := writeFile(t, "games.csv", "game,name,player_names,score\n1,Bulls\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected short row to fail")
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	path := writeFile(t, "games.txt", "Bulls")
	if _, err := Load(path); err == nil {
		t.Fatal("expected unsupported extension to fail")
	}
}
