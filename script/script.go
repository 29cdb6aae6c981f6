// Package script parses scene scripts.
//
// A script is a list of statements, one per line, each terminated by ';':
//
//	speaker:Hello there;
//	speaker:Hello again -vocal=v1.ogg;
//	:Narration without a speaker;
//	changeScene:chapter2.txt;
//	unlockBgm:bgm/theme.ogg;
//	unlockCg:cg/ending.png;
//	end;
//
// Everything after the terminating ';' is a comment. Blank lines and lines
// starting with ';' are ignored.
package script

import (
	"bufio"
	"fmt"
	"strings"
)

// Kind is the statement type.
type Kind int

const (
	Say Kind = iota
	ChangeScene
	UnlockBgm
	UnlockCG
	End
)

// Sentence is one parsed statement.
type Sentence struct {
	Kind    Kind
	Speaker string
	Text    string // dialogue text, or the target of ChangeScene and unlocks
	Vocal   string // voice file played with the line, if any
	Line    int    // 1-based source line
}

// Scene is a parsed script.
type Scene struct {
	Name      string
	URL       string
	Sentences []Sentence
}

// ParseError reports a malformed line.
type ParseError struct {
	Scene string
	Line  int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Scene, e.Line, e.Msg)
}

// Parse reads a scene script. url is recorded on the scene as-is.
func Parse(name, url, src string) (*Scene, error) {
	scene := &Scene{Name: name, URL: url}

	sc := bufio.NewScanner(strings.NewReader(src))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, ";") {
			continue
		}

		stmt, ok := cutStatement(raw)
		if !ok {
			return nil, &ParseError{Scene: name, Line: lineNo, Msg: "missing ';'"}
		}

		s, err := parseStatement(stmt)
		if err != nil {
			return nil, &ParseError{Scene: name, Line: lineNo, Msg: err.Error()}
		}
		s.Line = lineNo
		scene.Sentences = append(scene.Sentences, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read scene %s: %w", name, err)
	}

	return scene, nil
}

// commands are statements whose body is a file name rather than dialogue
var commands = map[string]Kind{
	"changeScene": ChangeScene,
	"unlockBgm":   UnlockBgm,
	"unlockCg":    UnlockCG,
}

func cutStatement(line string) (string, bool) {
	idx := strings.Index(line, ";")
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(line[:idx]), true
}

func parseStatement(stmt string) (Sentence, error) {
	if stmt == "end" {
		return Sentence{Kind: End}, nil
	}

	head, body, found := strings.Cut(stmt, ":")
	if !found {
		return Sentence{}, fmt.Errorf("unknown statement %q", stmt)
	}
	head = strings.TrimSpace(head)
	body = strings.TrimSpace(body)

	if kind, ok := commands[head]; ok {
		if body == "" {
			return Sentence{}, fmt.Errorf("%s needs a target", head)
		}
		return Sentence{Kind: kind, Text: body}, nil
	}

	text, vocal := cutVocal(body)
	return Sentence{Kind: Say, Speaker: head, Text: text, Vocal: vocal}, nil
}

func cutVocal(body string) (text, vocal string) {
	idx := strings.LastIndex(body, " -vocal=")
	if idx < 0 {
		return body, ""
	}
	return strings.TrimSpace(body[:idx]), strings.TrimSpace(body[idx+len(" -vocal="):])
}
