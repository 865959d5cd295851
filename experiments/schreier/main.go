package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/permgroup/permgroup"
)

type groupReport struct {
	Name             string           `json:"name"`
	Degree           int              `json:"degree"`
	Order            string           `json:"order"`
	Base             []int            `json:"base"`
	StrongGenerators []permgroup.Perm `json:"strong_generators"`
}

func main() {
	var groupName string
	var degree int
	var files string
	var seed int64
	var trials int
	var homX, homY string
	var printJSON bool

	flag.StringVar(&groupName, "group", "",
		"named group: a5, d8, star, sym, alt, cyclic, dihedral, rubik, m12")
	flag.IntVar(&degree, "n", 10, "degree for star, sym, alt, cyclic and dihedral")
	flag.StringVar(&files, "file", "", "comma-separated generator files")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.IntVar(&trials, "trials", 1, "independent constructions to cross-check orders")
	flag.StringVar(&homX, "hom-x", "", "generator file for the domain of a homomorphism test")
	flag.StringVar(&homY, "hom-y", "", "generator file for the images of a homomorphism test")
	flag.BoolVar(&printJSON, "json", false, "print base and strong generators as JSON")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed: %d", seed)

	if homX != "" || homY != "" {
		if homX == "" || homY == "" {
			essentials.Die("both -hom-x and -hom-y are required")
		}
		runHomomorphism(homX, homY, seed)
		return
	}

	var sets []*permgroup.GeneratorSet
	var names []string
	if groupName != "" {
		n, gens := namedGroup(groupName, degree)
		sets = append(sets, &permgroup.GeneratorSet{Degree: n, Generators: gens})
		names = append(names, groupName)
	}
	if files != "" {
		for _, path := range strings.Split(files, ",") {
			set, err := permgroup.LoadGeneratorSet(path)
			essentials.Must(err)
			sets = append(sets, set)
			names = append(names, path)
		}
	}
	if len(sets) == 0 {
		essentials.Die("nothing to do: pass -group, -file, or -hom-x/-hom-y")
	}

	reports := make([]*groupReport, len(sets))
	essentials.ConcurrentMap(0, len(sets), func(i int) {
		reports[i] = analyze(names[i], sets[i], seed+int64(i), trials)
	})
	for _, report := range reports {
		if printJSON {
			data, err := json.Marshal(report)
			essentials.Must(err)
			fmt.Println(string(data))
		} else {
			fmt.Printf("%s: degree=%d order=%s base=%v\n", report.Name, report.Degree,
				report.Order, report.Base)
		}
	}
}

func analyze(name string, set *permgroup.GeneratorSet, seed int64, trials int) *groupReport {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	group := permgroup.NewGroup(set.Degree, set.Generators, rng)
	order := group.Order()
	log.Printf("%s: built BSGS with %d base points and %d strong generators in %v",
		name, len(group.Base()), len(group.StrongGenerators()), time.Since(start))
	if trials > 1 {
		checked, err := permgroup.ConsistentOrder(set.Degree, set.Generators, trials)
		essentials.Must(err)
		if checked.Cmp(order) != 0 {
			essentials.Die(fmt.Sprintf("%s: order %s disagrees with cross-check %s",
				name, order, checked))
		}
		log.Printf("%s: %d independent constructions agree", name, trials)
	}
	return &groupReport{
		Name:             name,
		Degree:           set.Degree,
		Order:            order.String(),
		Base:             group.Base(),
		StrongGenerators: group.StrongGenerators(),
	}
}

func runHomomorphism(xPath, yPath string, seed int64) {
	x, err := permgroup.LoadGeneratorSet(xPath)
	essentials.Must(err)
	y, err := permgroup.LoadGeneratorSet(yPath)
	essentials.Must(err)
	if len(x.Generators) != len(y.Generators) {
		essentials.Die("generator counts differ:", len(x.Generators), len(y.Generators))
	}
	rng := rand.New(rand.NewSource(seed))
	ok := permgroup.IsHomomorphismRand(x.Degree, y.Degree, x.Generators, y.Generators, rng)
	fmt.Printf("homomorphism: %v\n", ok)
	if !ok {
		os.Exit(1)
	}
}

func namedGroup(name string, n int) (int, []permgroup.Perm) {
	switch name {
	case "a5":
		return 5, []permgroup.Perm{
			permgroup.MustPerm(1, 2, 0, 3, 4),
			permgroup.MustPerm(0, 1, 3, 4, 2),
		}
	case "d8":
		return 4, []permgroup.Perm{
			permgroup.MustPerm(1, 2, 3, 0),
			permgroup.MustPerm(2, 1, 0, 3),
		}
	case "star":
		return n, permgroup.StarGenerators(n)
	case "sym":
		return n, permgroup.SymmetricGenerators(n)
	case "alt":
		return n, permgroup.AlternatingGenerators(n)
	case "cyclic":
		return n, permgroup.CyclicGenerators(n)
	case "dihedral":
		return n, permgroup.DihedralGenerators(n)
	case "rubik":
		return permgroup.RubikGenerators()
	case "m12":
		return permgroup.Mathieu12Generators()
	}
	essentials.Die("unsupported group:", name)
	return 0, nil
}
