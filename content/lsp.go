package content

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/Belafon/WFUtilities-sub000/script"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "wfutil"

const (
	cmdSetProperty     = "wf.setProperty"
	cmdAddImport       = "wf.addImport"
	cmdOrganizeImports = "wf.organizeImports"
)

// LSPServer serves the structural edit operations over the language
// server protocol. It tracks open documents by URI; executeCommand
// requests edit the tracked text and return the rewritten document, so
// the client owns writing it back.
type LSPServer struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu        sync.Mutex
	documents map[string]string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		version:   version,
		documents: make(map[string]string),
	}

	ls.handler = protocol.Handler{
		Initialize:              ls.initialize,
		Initialized:             ls.initialized,
		Shutdown:                ls.shutdown,
		SetTrace:                ls.setTrace,
		TextDocumentDidOpen:     ls.textDocumentDidOpen,
		TextDocumentDidChange:   ls.textDocumentDidChange,
		TextDocumentDidClose:    ls.textDocumentDidClose,
		WorkspaceExecuteCommand: ls.workspaceExecuteCommand,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{cmdSetProperty, cmdAddImport, cmdOrganizeImports},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.setDocument(params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.setDocument(params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	delete(ls.documents, params.TextDocument.URI)
	return nil
}

func (ls *LSPServer) setDocument(uri, text string) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.documents[uri] = text
}

func (ls *LSPServer) document(uri string) (string, bool) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	text, ok := ls.documents[uri]
	return text, ok
}

// workspaceExecuteCommand runs one structural edit against a tracked
// document and returns the rewritten text. The edited text also replaces
// the tracked copy, so successive commands compose.
func (ls *LSPServer) workspaceExecuteCommand(ctx *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	switch params.Command {
	case cmdSetProperty:
		return ls.execSetProperty(params.Arguments)
	case cmdAddImport:
		return ls.execAddImport(params.Arguments)
	case cmdOrganizeImports:
		return ls.execOrganizeImports(params.Arguments)
	}
	return nil, fmt.Errorf("unknown command %q", params.Command)
}

// execSetProperty: [uri, objectName, path, value].
func (ls *LSPServer) execSetProperty(args []any) (any, error) {
	uri, err := argString(args, 0)
	if err != nil {
		return nil, err
	}
	objectName, err := argString(args, 1)
	if err != nil {
		return nil, err
	}
	path, err := argString(args, 2)
	if err != nil {
		return nil, err
	}
	value, err := argString(args, 3)
	if err != nil {
		return nil, err
	}
	segments, err := script.ParsePath(path)
	if err != nil {
		return nil, err
	}

	text, ok := ls.document(uri)
	if !ok {
		return nil, fmt.Errorf("document %s is not open", uri)
	}

	e := script.New(text, script.WithFile(uriToPath(uri)))
	obj, ok := e.FindObject(objectName)
	if !ok {
		return nil, fmt.Errorf("object %s not found", objectName)
	}
	if len(segments) == 1 && !segments[0].IsIndex {
		if err := obj.SetProperty(segments[0].Name, value); err != nil {
			return nil, err
		}
	} else {
		target, found, err := obj.FindNested(path)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("path %q not found in %s", path, objectName)
		}
		target.Replace(value)
	}

	updated := e.Apply()
	ls.setDocument(uri, updated)
	return updated, nil
}

// execAddImport: [uri, source, name]; an empty name makes it a
// side-effect import.
func (ls *LSPServer) execAddImport(args []any) (any, error) {
	uri, err := argString(args, 0)
	if err != nil {
		return nil, err
	}
	source, err := argString(args, 1)
	if err != nil {
		return nil, err
	}

	text, ok := ls.document(uri)
	if !ok {
		return nil, fmt.Errorf("document %s is not open", uri)
	}

	e := script.New(text, script.WithFile(uriToPath(uri)))
	imports := e.Imports()
	if name, err := argString(args, 2); err == nil && name != "" {
		if _, err := imports.AddNamed(source, name); err != nil {
			return nil, err
		}
	} else {
		if _, err := imports.AddSideEffect(source); err != nil {
			return nil, err
		}
	}

	updated := e.Apply()
	ls.setDocument(uri, updated)
	return updated, nil
}

// execOrganizeImports: [uri].
func (ls *LSPServer) execOrganizeImports(args []any) (any, error) {
	uri, err := argString(args, 0)
	if err != nil {
		return nil, err
	}
	text, ok := ls.document(uri)
	if !ok {
		return nil, fmt.Errorf("document %s is not open", uri)
	}

	e := script.New(text, script.WithFile(uriToPath(uri)))
	e.Imports().Organize()
	updated := e.Apply()
	ls.setDocument(uri, updated)
	return updated, nil
}

func argString(args []any, i int) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("missing argument %d", i)
	}
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("argument %d: expected string, got %T", i, args[i])
	}
	return s, nil
}

func uriToPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		if parsed, err := url.Parse(uri); err == nil {
			return filepath.Clean(parsed.Path)
		}
	}
	return uri
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
