// Command bracketsim runs a bracket between made up competitors with random results and prints the outcome
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/justinjudd/bracket"
	"github.com/justinjudd/bracket/config"
	"github.com/justinjudd/bracket/models"
	"github.com/justinjudd/bracket/models/storm"
	"github.com/justinjudd/bracket/tournament"
)

func main() {
	var (
		envFile  string
		dbPath   string
		game     string
		players  int
		seed     int64
		htmlPath string
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&envFile, "env", "", "path to an env file (defaults to .env when present)")
	flag.StringVar(&dbPath, "db", "", "path to the database, overrides BRACKET_DB_PATH")
	flag.StringVar(&game, "g", models.GameType_MARIO_KART_8.String(), "game type")
	flag.IntVar(&players, "n", 12, "number of competitors")
	flag.Int64Var(&seed, "s", 0, "random seed, 0 uses the clock")
	flag.StringVar(&htmlPath, "html", "", "write the finished bracket as HTML to this file")
	flag.Parse()

	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	log := cfg.Logger()

	g, err := models.ParseGameType(game)
	if err != nil {
		log.WithError(err).Fatal("Unknown game type")
	}
	rules, err := models.RulesFor(g)
	if err != nil {
		log.WithError(err).Fatal("No rules for game type")
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	store, err := storm.NewStorageEngine(cfg.DBPath, log)
	if err != nil {
		log.WithError(err).Fatal("Unable to open database")
	}
	defer store.Close()

	m, err := bracket.NewManager(store, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Unable to create manager")
	}
	m.Seeder, err = tournament.NewSeeder(cfg.Seeder, r)
	if err != nil {
		log.WithError(err).Fatal("Unable to create seeder")
	}

	var teams []tournament.Team
	for i := 0; i < players/rules.TeamSize; i++ {
		team := tournament.Team{Name: fmt.Sprintf("Team %d", i+1)}
		for j := 0; j < rules.TeamSize; j++ {
			c, err := m.CreateCompetitor(fmt.Sprintf("Player %d", i*rules.TeamSize+j+1))
			if err != nil {
				log.WithError(err).Fatal("Unable to create competitor")
			}
			team.Members = append(team.Members, c.ID)
		}
		teams = append(teams, team)
	}

	b, err := m.CreateBracket(g, teams)
	if err != nil {
		log.WithError(err).Fatal("Unable to create bracket")
	}
	if _, err := m.PlayOut(b.ID, r); err != nil {
		log.WithError(err).Fatal("Unable to play bracket")
	}
	commit, err := m.CompleteBracket(b.ID)
	if err != nil {
		log.WithError(err).Fatal("Unable to complete bracket")
	}

	structure, err := m.Structure(b.ID)
	if err != nil {
		log.WithError(err).Fatal("Unable to print bracket")
	}
	fmt.Printf("bracket %s (%s, seed %d)\n%s\n\n", b.ID, g, seed, structure)

	sort.SliceStable(commit.Competitors, func(i, j int) bool {
		return commit.Deltas[commit.Competitors[i].ID] > commit.Deltas[commit.Competitors[j].ID]
	})
	var champions []string
	for _, c := range commit.Competitors {
		for _, w := range commit.Winners {
			if w == c.ID {
				champions = append(champions, c.Name)
			}
		}
		fmt.Printf("%-12s %5d %+4d\n", c.Name, c.Rating(g), commit.Deltas[c.ID])
	}
	if len(champions) > 0 {
		fmt.Printf("\nwinner: %s\n", strings.Join(champions, " + "))
	}

	if htmlPath != "" {
		h, err := m.HTML(b.ID)
		if err != nil {
			log.WithError(err).Fatal("Unable to render bracket")
		}
		if err := ioutil.WriteFile(htmlPath, h, 0644); err != nil {
			log.WithError(err).Fatal("Unable to write HTML")
		}
	}
}
