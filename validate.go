package glayer

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strconv"
	"strings"
)

const lambdaImportPath = "github.com/aws/aws-lambda-go/lambda"

// Validate checks that the Go source file at path is a usable Lambda entry
// point: it declares main, main hands a handler to lambda.Start, and that
// handler has a signature the runtime accepts.
func Validate(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failure in reading %s: %w", path, err)
	}
	fileSet := token.NewFileSet()
	node, err := parser.ParseFile(fileSet, path, data, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("failure in parsing %s: %w", path, err)
	}
	mainFound := containsMain(node)
	if !mainFound {
		return fmt.Errorf("main function not found in %s", path)
	}
	start := lambdaStartCall(node)
	if start == nil {
		return fmt.Errorf("main function does not call lambda.Start(handler) from %s", lambdaImportPath)
	}
	return validateHandler(node, start)
}

func containsMain(node *ast.File) bool {
	for _, decl := range node.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if ok && fn.Recv == nil && fn.Name.Name == "main" {
			return true
		}
	}
	return false
}

// lambdaImportName returns the name the file refers to the aws-lambda-go
// lambda package by, "." for a dot import, or "" when it isn't imported.
func lambdaImportName(node *ast.File) string {
	for _, imp := range node.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != lambdaImportPath {
			continue
		}
		if imp.Name != nil {
			return imp.Name.Name
		}
		return "lambda"
	}
	return ""
}

func lambdaStartCall(node *ast.File) *ast.CallExpr {
	name := lambdaImportName(node)
	if name == "" || name == "_" {
		return nil
	}
	var found *ast.CallExpr
	ast.Inspect(node, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		switch x := n.(type) {
		case *ast.CallExpr:
			switch y := x.Fun.(type) {
			case *ast.SelectorExpr:
				pkg, ok := y.X.(*ast.Ident)
				if ok && pkg.Name == name && strings.HasPrefix(y.Sel.Name, "Start") {
					found = x
					return false
				}
			case *ast.Ident:
				if name == "." && strings.HasPrefix(y.Name, "Start") {
					found = x
					return false
				}
			}
		}
		return true
	})
	return found
}

func validateHandler(node *ast.File, start *ast.CallExpr) error {
	if len(start.Args) == 0 {
		return fmt.Errorf("lambda.Start called without a handler")
	}
	var handler *ast.FuncType
	switch arg := start.Args[0].(type) {
	case *ast.FuncLit:
		handler = arg.Type
	case *ast.Ident:
		decl := findFunc(node, arg.Name)
		if decl == nil {
			if declaresValue(node, arg.Name) {
				return nil
			}
			return fmt.Errorf("handler %s is not declared", arg.Name)
		}
		handler = decl.Type
	default:
		// method values and package qualified functions can't be resolved from
		// a single file
		return nil
	}
	return validateSignature(handler)
}

func validateSignature(fn *ast.FuncType) error {
	params := fieldCount(fn.Params)
	results := fieldCount(fn.Results)
	if params > 2 {
		return fmt.Errorf("handler takes %d arguments, but at most 2 are allowed", params)
	}
	if params == 2 && !isContext(fn.Params.List[0].Type) {
		return fmt.Errorf("handler takes two arguments, but the first is not context.Context")
	}
	if results > 2 {
		return fmt.Errorf("handler returns %d values, but at most 2 are allowed", results)
	}
	if results == 2 && !isError(fn.Results.List[len(fn.Results.List)-1].Type) {
		return fmt.Errorf("handler returns two values, but the second is not error")
	}
	if results == 1 && !isError(fn.Results.List[0].Type) {
		return fmt.Errorf("handler returns a single value, but it is not error")
	}
	return nil
}

func findFunc(node *ast.File, name string) *ast.FuncDecl {
	for _, decl := range node.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if ok && fn.Recv == nil && fn.Name.Name == name {
			return fn
		}
	}
	return nil
}

func declaresValue(node *ast.File, name string) bool {
	var found bool
	ast.Inspect(node, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.ValueSpec:
			for _, ident := range x.Names {
				if ident.Name == name {
					found = true
				}
			}
		case *ast.AssignStmt:
			for _, lhs := range x.Lhs {
				ident, ok := lhs.(*ast.Ident)
				if ok && ident.Name == name {
					found = true
				}
			}
		}
		return !found
	})
	return found
}

func fieldCount(fields *ast.FieldList) int {
	if fields == nil {
		return 0
	}
	count := 0
	for _, f := range fields.List {
		if len(f.Names) == 0 {
			count++
			continue
		}
		count += len(f.Names)
	}
	return count
}

func isError(expr ast.Expr) bool {
	ident, ok := expr.(*ast.Ident)
	return ok && ident.Name == "error"
}

func isContext(expr ast.Expr) bool {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "context" && sel.Sel.Name == "Context"
}
