package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/vsariola/fretwav"
	"github.com/vsariola/fretwav/version"
)

func main() {
	help := flag.Bool("h", false, "Show help.")
	directory := flag.String("o", "", "Directory where to output all files. The directory and its parents are created if needed. By default, the current working directory.")
	sampleRate := flag.Int("r", 0, "Sample rate in Hz, overriding the one in the chord book.")
	duration := flag.Float64("d", 0, "Length of each rendering in seconds, overriding the one in the chord book.")
	midiOut := flag.Bool("m", false, "Also output each chord as a .mid file.")
	rawOut := flag.Bool("raw", false, "Also output each chord as a .raw file of 16-bit signed little-endian PCM.")
	jobs := flag.Int("j", 0, "Number of chords to render in parallel. By default, the number of CPUs.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	log.SetFlags(0)
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	dir := *directory
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			log.Fatalf("could not get working directory, specify the output directory explicitly: %v", err)
		}
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		log.Fatalf("could not create output directory %v: %v", dir, err)
	}
	options := fretwav.Options{Dir: dir, Midi: *midiOut, Raw: *rawOut, Jobs: *jobs}
	process := func(name string, book fretwav.Book) bool {
		if *sampleRate != 0 {
			book.SampleRate = *sampleRate
		}
		if *duration != 0 {
			book.Duration = *duration
		}
		results, err := fretwav.Render(book, options)
		if err != nil {
			log.Printf("could not render %v: %v", name, err)
			return false
		}
		ok := true
		for _, res := range results {
			if res.Err != nil {
				log.Printf("%v: %v", name, res.Err)
				ok = false
				continue
			}
			for _, f := range res.Files {
				log.Printf("wrote %v", f)
			}
		}
		return ok
	}
	processFile := func(filename string) bool {
		contents, err := os.ReadFile(filename)
		if err != nil {
			log.Printf("could not read file %v: %v", filename, err)
			return false
		}
		book, err := fretwav.LoadBook(contents)
		if err != nil {
			log.Printf("could not load %v: %v", filename, err)
			return false
		}
		return process(filename, book)
	}
	retval := 0
	if flag.NArg() == 0 {
		if !process("built-in chord book", fretwav.DefaultBook()) {
			retval = 1
		}
	}
	for _, param := range flag.Args() {
		if info, err := os.Stat(param); err == nil && info.IsDir() {
			var files []string
			for _, pattern := range []string{"*.yml", "*.yaml", "*.json"} {
				matches, err := filepath.Glob(filepath.Join(param, pattern))
				if err != nil {
					log.Printf("could not glob the path %v for %v files: %v", param, pattern, err)
					retval = 1
					continue
				}
				files = append(files, matches...)
			}
			for _, file := range files {
				if !processFile(file) {
					retval = 1
				}
			}
		} else if !processFile(param) {
			retval = 1
		}
	}
	os.Exit(retval)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "fretwav renders the chords of .yml/.json chord books as .wav files.\nWithout arguments, the built-in chord book is rendered.\nUsage: %s [flags] [path ...]\n", os.Args[0])
	flag.PrintDefaults()
}
