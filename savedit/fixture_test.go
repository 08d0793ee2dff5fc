package savedit_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/haven-tools/savedit/savedit"
)

// sampleSave is a small but structurally complete save: globals, two
// ships (plus a duplicate-id ship that must be skipped), two crew members
// with the full personality substructure, and two storage features of
// which only one holds a positive-quantity line.
const sampleSave = `<?xml version="1.0" encoding="UTF-8"?>
<game idCounter="9000">
<playerBank ca="5000"></playerBank>
<settings><diff sandbox="false"/></settings>
<questLines><questLines><l type="Tutorial"/><l type="ExodusFleet" playerPrestigePoints="7"/></questLines></questLines>
<shipNetwork>
<ship sid="42" sname="Horizon" sx="224" sy="280">
<characters>
<c name="Ada" entId="8001">
<state bedLink="b1"/>
<pers>
<attr><a id="210" points="3"/><a id="214" points="2"/></attr>
<skills><s sk="22" level="4"/><s sk="16" level="2"/></skills>
<traits><t id="105"/><t id="111"/></traits>
<conditions><c id="2001"/><c id="9999"/></conditions>
<sociality><relationships><l targetId="8002" friendship="5" attraction="1" compatibility="2"/></relationships></sociality>
</pers>
</c>
<c name="Brook" entId="8002">
<state bedLink=""/>
<pers>
<attr><a id="210" points="4"/></attr>
<skills><s sk="1" level="3"/></skills>
<traits/>
<conditions/>
<sociality><relationships><l targetId="8001" friendship="6" attraction="0" compatibility="2"/></relationships></sociality>
</pers>
</c>
</characters>
<e entId="501"><feat eatAllowed="true"><inv><s elementaryId="158" inStorage="40" onTheWayIn="0" onTheWayOut="0"/><s elementaryId="157" inStorage="12" onTheWayIn="0" onTheWayOut="0"/></inv></feat></e>
<e objId="fridge"><feat eatAllowed="true"><inv><s elementaryId="706" inStorage="0"/></inv></feat></e>
</ship>
<ship sid="43" sname="Skiff" sx="112" sy="112"><characters/></ship>
<ship sid="42" sname="Duplicate" sx="28" sy="28"/>
</shipNetwork>
</game>
`

// writeSample writes content to a fresh temp file and returns its path.
func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.sav")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// loadSample loads the standard fixture, optionally rewritten first, and
// registers cleanup.
func loadSample(t *testing.T, rewrites ...func(string) string) *savedit.SaveDocument {
	t.Helper()
	content := sampleSave
	for _, rw := range rewrites {
		content = rw(content)
	}
	doc, err := savedit.Load(writeSample(t, content))
	if err != nil {
		t.Fatalf("failed to load sample: %v", err)
	}
	t.Cleanup(func() { _ = doc.Close() })
	return doc
}

// reload saves the document to a second path and loads it back, so tests
// can verify that a mutation survived serialization.
func reload(t *testing.T, doc *savedit.SaveDocument) *savedit.SaveDocument {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reloaded.sav")
	if err := doc.SaveTo(path); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	got, err := savedit.Load(path)
	if err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	t.Cleanup(func() { _ = got.Close() })
	return got
}

func replace(old, new string) func(string) string {
	return func(s string) string { return strings.Replace(s, old, new, 1) }
}
