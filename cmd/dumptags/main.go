// Diagnostic program: prints the tags the scanner sees for one directory and
// how each title parses on its own.
package main

import (
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/llehouerou/movements/internal/composers"
	"github.com/llehouerou/movements/internal/movements"
	"github.com/llehouerou/movements/internal/tags"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s DIR", filepath.Base(os.Args[0]))
	}
	dir := os.Args[1]

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatalf("Failed to read directory: %v", err)
	}

	var infos []*tags.Tag
	var names []string
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() || !tags.IsMusicFile(path) {
			continue
		}
		info, err := tags.Read(path)
		if err != nil {
			log.Printf("  skip %s: %v", e.Name(), err)
			continue
		}
		infos = append(infos, info)
		if info.Composer != "" {
			names = append(names, info.Composer)
		}
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].DiscNumber != infos[j].DiscNumber {
			return infos[i].DiscNumber < infos[j].DiscNumber
		}
		return infos[i].TrackNumber < infos[j].TrackNumber
	})

	idx := composers.Build(names)
	log.Printf("%d files, composers: %v", len(infos), idx.Names())

	for _, info := range infos {
		res := movements.ParseTitle(info.Title, idx)
		log.Printf("[%d-%02d] %s", info.DiscNumber, info.TrackNumber, info.Title)
		log.Printf("    composer=%q work tag=%q movement tag=%q", info.Composer, info.Work, info.MovementName)
		log.Printf("    parsed: %s | %s (%s)", res.PieceTitle, res.MovementTitle, res.ParseName)
	}
}
