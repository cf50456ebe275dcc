// Command nsslex lexes NWScript-style source files.
//
// With directory or file arguments it runs in batch mode: every matching
// file is read and lexed back to back with a single recycled output, and a
// timing summary is reported at the end. With no arguments it starts an
// interactive prompt that lexes each entered line and prints its tokens.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"github.com/nsstools/nsslex"
	"github.com/nsstools/nsslex/lexer"
	"github.com/nsstools/nsslex/token"
)

var log = logrus.New()

func main() {
	ext := flag.String("ext", ".nss", "source file extension matched in batch mode")
	jsonOut := flag.Bool("json", false, "dump tokens as JSON instead of logging")
	verbose := flag.Bool("v", false, "log every file, not just the summary")
	quiet := flag.Bool("q", false, "log errors only")
	flag.Parse()

	log.SetOutput(os.Stderr)
	switch {
	case *quiet:
		log.SetLevel(logrus.ErrorLevel)
	case *verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	if flag.NArg() == 0 {
		repl()
		return
	}

	if batch(flag.Args(), *ext, *jsonOut) > 0 {
		os.Exit(1)
	}
}

// batch lexes every matching file under the given roots and returns the
// number of files that failed.
func batch(roots []string, ext string, jsonOut bool) int {
	var paths []string
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(path) == ext {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			log.WithField("root", root).WithError(err).Error("walk failed")
			return 1
		}
	}
	if len(paths) == 0 {
		log.WithField("ext", ext).Warn("no source files found")
		return 0
	}

	type fileDump struct {
		File   string        `json:"file"`
		Tokens []tokenRecord `json:"tokens"`
	}
	var dumps []fileDump

	var (
		out        *lexer.Output
		totalTime  time.Duration
		totalToks  int
		failures   int
	)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			log.WithField("file", path).WithError(err).Error("read failed")
			failures++
			continue
		}

		before := time.Now()
		out, err = nsslex.Lex(data, nsslex.WithOutput(out), nsslex.WithFilename(path))
		elapsed := time.Since(before)

		totalTime += elapsed
		totalToks += len(out.Tokens)

		if err != nil {
			fmt.Fprintln(os.Stderr, color.Red(err.Error()))
			failures++
			continue
		}

		log.WithFields(logrus.Fields{
			"file":     path,
			"tokens":   len(out.Tokens),
			"duration": elapsed,
		}).Debug("lexed")

		if jsonOut {
			dumps = append(dumps, fileDump{File: path, Tokens: records(out)})
		}
	}

	if jsonOut {
		if err := json.MarshalWrite(os.Stdout, dumps); err != nil {
			log.WithError(err).Error("json dump failed")
			return failures + 1
		}
		fmt.Println()
	}

	log.WithFields(logrus.Fields{
		"files":    len(paths),
		"tokens":   totalToks,
		"failures": failures,
		"total":    totalTime,
	}).Info("batch complete")

	return failures
}

func repl() {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	fmt.Println("nsslex interactive mode. Ctrl+C clears the line, Ctrl+D exits.")

	var out *lexer.Output
	for {
		line, err := ln.Prompt("nsslex> ")
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			log.WithError(err).Error("prompt failed")
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		var lexErr error
		out, lexErr = nsslex.Lex([]byte(line), nsslex.WithOutput(out))
		for _, tok := range out.Tokens {
			fmt.Printf("  %2d:%-3d %s\n", tok.Debug.Line+1, tok.Debug.ColumnStart+1, describe(out, tok))
		}
		if lexErr != nil {
			fmt.Println(color.Red("  error: " + lexErr.Error()))
		}
	}
}

// tokenRecord is the JSON shape of one token.
type tokenRecord struct {
	Kind        string  `json:"kind"`
	Line        int     `json:"line"`
	ColumnStart int     `json:"columnStart"`
	ColumnEnd   int     `json:"columnEnd"`
	Spelling    string  `json:"spelling,omitzero"`
	Literal     string  `json:"literal,omitzero"`
	Text        string  `json:"text,omitzero"`
	Int         int32   `json:"int,omitzero"`
	Float       float32 `json:"float,omitzero"`
}

func records(out *lexer.Output) []tokenRecord {
	recs := make([]tokenRecord, 0, len(out.Tokens))
	for _, tok := range out.Tokens {
		r := tokenRecord{
			Kind:        tok.Kind.String(),
			Line:        tok.Debug.Line,
			ColumnStart: tok.Debug.ColumnStart,
			ColumnEnd:   tok.Debug.ColumnEnd,
		}
		switch tok.Kind {
		case token.KindKeyword:
			r.Spelling = tok.Keyword.String()
		case token.KindPunctuator:
			r.Spelling = tok.Punctuator.String()
		case token.KindIdentifier:
			r.Text = string(out.Text(tok))
		case token.KindLiteral:
			r.Literal = tok.Literal.String()
			switch tok.Literal {
			case token.LitString:
				r.Text = string(out.Text(tok))
			case token.LitInt:
				r.Int = tok.Int
			case token.LitFloat:
				r.Float = tok.Float
			}
		}
		recs = append(recs, r)
	}
	return recs
}

func describe(out *lexer.Output, tok token.Token) string {
	switch tok.Kind {
	case token.KindKeyword:
		return fmt.Sprintf("keyword    %s", tok.Keyword)
	case token.KindPunctuator:
		return fmt.Sprintf("punctuator %s", tok.Punctuator)
	case token.KindIdentifier:
		return fmt.Sprintf("identifier %s", out.Text(tok))
	case token.KindLiteral:
		switch tok.Literal {
		case token.LitString:
			return fmt.Sprintf("string     %q", out.Text(tok))
		case token.LitInt:
			return fmt.Sprintf("int        %d", tok.Int)
		case token.LitFloat:
			return fmt.Sprintf("float      %g", tok.Float)
		}
	}
	return tok.Kind.String()
}
