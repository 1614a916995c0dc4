package ast

import (
	"encoding/json"
	"fmt"
)

// Decoding of the frontend's `--emit-ast` JSON dump. Every node is an object
// tagged with a "kind" field; polymorphic children are decoded in two passes
// via json.RawMessage. The decoder is the only fallible surface of this
// repository: the analyzer itself never fails on a well-formed tree.

// DecodeProgram decodes a frontend AST dump into a Program.
func DecodeProgram(data []byte) (*Program, error) {
	var wire struct {
		Span  wireSpan          `json:"span"`
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("malformed AST dump: %w", err)
	}

	program := &Program{}
	program.Pos, program.EndPos = wire.Span.positions()

	for i, raw := range wire.Items {
		item, err := decodeItem(raw)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		program.Items = append(program.Items, item)
	}

	return program, nil
}

type wireSpan struct {
	File  string    `json:"file,omitempty"`
	Start wirePoint `json:"start"`
	End   wirePoint `json:"end"`
}

type wirePoint struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (s wireSpan) positions() (Position, Position) {
	start := Position{Filename: s.File, Offset: s.Start.Offset, Line: s.Start.Line, Column: s.Start.Column}
	end := Position{Filename: s.File, Offset: s.End.Offset, Line: s.End.Line, Column: s.End.Column}
	return start, end
}

type wireIdent struct {
	Span  wireSpan `json:"span"`
	Value string   `json:"value"`
}

func (w wireIdent) ident() Ident {
	id := Ident{Value: w.Value}
	id.Pos, id.EndPos = w.Span.positions()
	return id
}

// kindOf peeks at the "kind" tag without committing to a node shape.
func kindOf(raw json.RawMessage) (string, wireSpan, error) {
	var head struct {
		Kind string   `json:"kind"`
		Span wireSpan `json:"span"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return "", wireSpan{}, fmt.Errorf("malformed node: %w", err)
	}
	return head.Kind, head.Span, nil
}

func decodeItem(raw json.RawMessage) (Item, error) {
	kind, span, err := kindOf(raw)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "contract":
		return decodeContract(raw, span)
	case "function":
		return decodeFunction(raw, span)
	case "use":
		return decodeUse(raw, span)
	case "struct":
		return decodeStruct(raw, span)
	default:
		return nil, fmt.Errorf("unknown item kind %q", kind)
	}
}

func decodeContract(raw json.RawMessage, span wireSpan) (*Contract, error) {
	var wire struct {
		Name    wireIdent         `json:"name"`
		Members []json.RawMessage `json:"members"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("malformed contract: %w", err)
	}

	contract := &Contract{Name: wire.Name.ident()}
	contract.Pos, contract.EndPos = span.positions()

	for i, rawMember := range wire.Members {
		member, err := decodeMember(rawMember)
		if err != nil {
			return nil, fmt.Errorf("contract %s member %d: %w", contract.Name.Value, i, err)
		}
		contract.Members = append(contract.Members, member)
	}

	return contract, nil
}

func decodeMember(raw json.RawMessage) (ContractMember, error) {
	kind, span, err := kindOf(raw)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "storage":
		var wire struct {
			Fields []struct {
				Span wireSpan        `json:"span"`
				Name wireIdent       `json:"name"`
				Type json.RawMessage `json:"type"`
			} `json:"fields"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed storage: %w", err)
		}

		storage := &Storage{}
		storage.Pos, storage.EndPos = span.positions()
		for _, f := range wire.Fields {
			field := &StorageField{Name: f.Name.ident()}
			field.Pos, field.EndPos = f.Span.positions()
			if len(f.Type) > 0 {
				field.Type, err = decodeTypeRef(f.Type)
				if err != nil {
					return nil, err
				}
			}
			storage.Fields = append(storage.Fields, field)
		}
		return storage, nil

	case "init":
		var wire struct {
			Name   wireIdent         `json:"name"`
			Params []json.RawMessage `json:"params"`
			Body   json.RawMessage   `json:"body"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed init: %w", err)
		}

		init := &Init{Name: wire.Name.ident()}
		init.Pos, init.EndPos = span.positions()
		if init.Params, err = decodeParams(wire.Params); err != nil {
			return nil, err
		}
		if init.Body, err = decodeBlock(wire.Body); err != nil {
			return nil, err
		}
		return init, nil

	case "function":
		return decodeFunction(raw, span)
	case "use":
		return decodeUse(raw, span)
	default:
		return nil, fmt.Errorf("unknown contract member kind %q", kind)
	}
}

func decodeFunction(raw json.RawMessage, span wireSpan) (*Function, error) {
	var wire struct {
		Name   wireIdent         `json:"name"`
		Params []json.RawMessage `json:"params"`
		Return json.RawMessage   `json:"return"`
		Body   json.RawMessage   `json:"body"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("malformed function: %w", err)
	}

	fn := &Function{Name: wire.Name.ident()}
	fn.Pos, fn.EndPos = span.positions()

	var err error
	if fn.Params, err = decodeParams(wire.Params); err != nil {
		return nil, err
	}
	if len(wire.Return) > 0 {
		if fn.Return, err = decodeTypeRef(wire.Return); err != nil {
			return nil, err
		}
	}
	if fn.Body, err = decodeBlock(wire.Body); err != nil {
		return nil, err
	}

	return fn, nil
}

func decodeUse(raw json.RawMessage, span wireSpan) (*Use, error) {
	var wire struct {
		Path []wireIdent `json:"path"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("malformed use: %w", err)
	}

	use := &Use{}
	use.Pos, use.EndPos = span.positions()
	for _, seg := range wire.Path {
		use.Path = append(use.Path, seg.ident())
	}
	return use, nil
}

func decodeStruct(raw json.RawMessage, span wireSpan) (*Struct, error) {
	var wire struct {
		Name   wireIdent `json:"name"`
		Fields []struct {
			Span wireSpan        `json:"span"`
			Name wireIdent       `json:"name"`
			Type json.RawMessage `json:"type"`
		} `json:"fields"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("malformed struct: %w", err)
	}

	st := &Struct{Name: wire.Name.ident()}
	st.Pos, st.EndPos = span.positions()
	for _, f := range wire.Fields {
		field := &StructField{Name: f.Name.ident()}
		field.Pos, field.EndPos = f.Span.positions()
		if len(f.Type) > 0 {
			var err error
			if field.Type, err = decodeTypeRef(f.Type); err != nil {
				return nil, err
			}
		}
		st.Fields = append(st.Fields, field)
	}
	return st, nil
}

func decodeParams(raws []json.RawMessage) ([]*Param, error) {
	var params []*Param
	for _, raw := range raws {
		var wire struct {
			Span wireSpan        `json:"span"`
			Name wireIdent       `json:"name"`
			Type json.RawMessage `json:"type"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed param: %w", err)
		}

		param := &Param{Name: wire.Name.ident()}
		param.Pos, param.EndPos = wire.Span.positions()
		if len(wire.Type) > 0 {
			var err error
			if param.Type, err = decodeTypeRef(wire.Type); err != nil {
				return nil, err
			}
		}
		params = append(params, param)
	}
	return params, nil
}

func decodeTypeRef(raw json.RawMessage) (*TypeRef, error) {
	var wire struct {
		Span     wireSpan          `json:"span"`
		Name     wireIdent         `json:"name"`
		Generics []json.RawMessage `json:"generics"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("malformed type: %w", err)
	}

	ref := &TypeRef{Name: wire.Name.ident()}
	ref.Pos, ref.EndPos = wire.Span.positions()
	for _, g := range wire.Generics {
		generic, err := decodeTypeRef(g)
		if err != nil {
			return nil, err
		}
		ref.Generics = append(ref.Generics, generic)
	}
	return ref, nil
}

func decodeBlock(raw json.RawMessage) (*Block, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var wire struct {
		Span  wireSpan          `json:"span"`
		Stmts []json.RawMessage `json:"stmts"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("malformed block: %w", err)
	}

	block := &Block{}
	block.Pos, block.EndPos = wire.Span.positions()
	for i, rawStmt := range wire.Stmts {
		stmt, err := decodeStatement(rawStmt)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	return block, nil
}

func decodeStatement(raw json.RawMessage) (Statement, error) {
	kind, span, err := kindOf(raw)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "let":
		var wire struct {
			Mut  bool            `json:"mut"`
			Name wireIdent       `json:"name"`
			Init json.RawMessage `json:"init"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed let: %w", err)
		}
		stmt := &LetStmt{Mut: wire.Mut, Name: wire.Name.ident()}
		stmt.Pos, stmt.EndPos = span.positions()
		if len(wire.Init) > 0 {
			if stmt.Init, err = decodeExpr(wire.Init); err != nil {
				return nil, err
			}
		}
		return stmt, nil

	case "expr":
		var wire struct {
			Expr json.RawMessage `json:"expr"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed expr statement: %w", err)
		}
		stmt := &ExprStmt{}
		stmt.Pos, stmt.EndPos = span.positions()
		if stmt.Expr, err = decodeExpr(wire.Expr); err != nil {
			return nil, err
		}
		return stmt, nil

	case "return":
		var wire struct {
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed return: %w", err)
		}
		stmt := &ReturnStmt{}
		stmt.Pos, stmt.EndPos = span.positions()
		if len(wire.Value) > 0 {
			if stmt.Value, err = decodeExpr(wire.Value); err != nil {
				return nil, err
			}
		}
		return stmt, nil

	case "if":
		var wire struct {
			Cond json.RawMessage `json:"cond"`
			Then json.RawMessage `json:"then"`
			Else json.RawMessage `json:"else"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed if: %w", err)
		}
		stmt := &IfStmt{}
		stmt.Pos, stmt.EndPos = span.positions()
		if stmt.Cond, err = decodeExpr(wire.Cond); err != nil {
			return nil, err
		}
		if stmt.Then, err = decodeBlock(wire.Then); err != nil {
			return nil, err
		}
		if stmt.Else, err = decodeBlock(wire.Else); err != nil {
			return nil, err
		}
		return stmt, nil

	case "while":
		var wire struct {
			Cond json.RawMessage `json:"cond"`
			Body json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed while: %w", err)
		}
		stmt := &WhileStmt{}
		stmt.Pos, stmt.EndPos = span.positions()
		if stmt.Cond, err = decodeExpr(wire.Cond); err != nil {
			return nil, err
		}
		if stmt.Body, err = decodeBlock(wire.Body); err != nil {
			return nil, err
		}
		return stmt, nil

	case "for":
		var wire struct {
			Var   wireIdent       `json:"var"`
			Start json.RawMessage `json:"start"`
			End   json.RawMessage `json:"end"`
			Body  json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed for: %w", err)
		}
		stmt := &ForStmt{Var: wire.Var.ident()}
		stmt.Pos, stmt.EndPos = span.positions()
		if stmt.Start, err = decodeExpr(wire.Start); err != nil {
			return nil, err
		}
		if stmt.End, err = decodeExpr(wire.End); err != nil {
			return nil, err
		}
		if stmt.Body, err = decodeBlock(wire.Body); err != nil {
			return nil, err
		}
		return stmt, nil

	case "break":
		stmt := &BreakStmt{}
		stmt.Pos, stmt.EndPos = span.positions()
		return stmt, nil

	case "continue":
		stmt := &ContinueStmt{}
		stmt.Pos, stmt.EndPos = span.positions()
		return stmt, nil

	default:
		return nil, fmt.Errorf("unknown statement kind %q", kind)
	}
}

func decodeExpr(raw json.RawMessage) (Expr, error) {
	kind, span, err := kindOf(raw)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "binary":
		var wire struct {
			Op    string          `json:"op"`
			Left  json.RawMessage `json:"left"`
			Right json.RawMessage `json:"right"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed binary: %w", err)
		}
		expr := &BinaryExpr{Op: BinaryOpFromSymbol(wire.Op)}
		expr.Pos, expr.EndPos = span.positions()
		if expr.Op == ILLEGAL_OP {
			return nil, fmt.Errorf("unknown binary operator %q", wire.Op)
		}
		if expr.Left, err = decodeExpr(wire.Left); err != nil {
			return nil, err
		}
		if expr.Right, err = decodeExpr(wire.Right); err != nil {
			return nil, err
		}
		return expr, nil

	case "unary":
		var wire struct {
			Op    string          `json:"op"`
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed unary: %w", err)
		}
		expr := &UnaryExpr{Op: wire.Op}
		expr.Pos, expr.EndPos = span.positions()
		if expr.Value, err = decodeExpr(wire.Value); err != nil {
			return nil, err
		}
		return expr, nil

	case "call":
		var wire struct {
			Callee json.RawMessage   `json:"callee"`
			Args   []json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed call: %w", err)
		}
		expr := &CallExpr{}
		expr.Pos, expr.EndPos = span.positions()
		if expr.Callee, err = decodeExpr(wire.Callee); err != nil {
			return nil, err
		}
		for _, arg := range wire.Args {
			decoded, err := decodeExpr(arg)
			if err != nil {
				return nil, err
			}
			expr.Args = append(expr.Args, decoded)
		}
		return expr, nil

	case "field_access":
		var wire struct {
			Target json.RawMessage `json:"target"`
			Field  string          `json:"field"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed field access: %w", err)
		}
		expr := &FieldAccessExpr{Field: wire.Field}
		expr.Pos, expr.EndPos = span.positions()
		if expr.Target, err = decodeExpr(wire.Target); err != nil {
			return nil, err
		}
		return expr, nil

	case "index":
		var wire struct {
			Target json.RawMessage `json:"target"`
			Index  json.RawMessage `json:"index"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed index: %w", err)
		}
		expr := &IndexExpr{}
		expr.Pos, expr.EndPos = span.positions()
		if expr.Target, err = decodeExpr(wire.Target); err != nil {
			return nil, err
		}
		if expr.Index, err = decodeExpr(wire.Index); err != nil {
			return nil, err
		}
		return expr, nil

	case "match":
		var wire struct {
			Scrutinee json.RawMessage `json:"scrutinee"`
			Arms      []struct {
				Span    wireSpan        `json:"span"`
				Pattern string          `json:"pattern"`
				Guard   json.RawMessage `json:"guard"`
				Body    json.RawMessage `json:"body"`
			} `json:"arms"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed match: %w", err)
		}
		expr := &MatchExpr{}
		expr.Pos, expr.EndPos = span.positions()
		if expr.Scrutinee, err = decodeExpr(wire.Scrutinee); err != nil {
			return nil, err
		}
		for _, a := range wire.Arms {
			arm := &MatchArm{Pattern: a.Pattern}
			arm.Pos, arm.EndPos = a.Span.positions()
			if len(a.Guard) > 0 {
				if arm.Guard, err = decodeExpr(a.Guard); err != nil {
					return nil, err
				}
			}
			if arm.Body, err = decodeExpr(a.Body); err != nil {
				return nil, err
			}
			expr.Arms = append(expr.Arms, arm)
		}
		return expr, nil

	case "struct_init":
		var wire struct {
			Name   wireIdent `json:"name"`
			Fields []struct {
				Span  wireSpan        `json:"span"`
				Name  wireIdent       `json:"name"`
				Value json.RawMessage `json:"value"`
			} `json:"fields"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed struct literal: %w", err)
		}
		expr := &StructInitExpr{Name: wire.Name.ident()}
		expr.Pos, expr.EndPos = span.positions()
		for _, f := range wire.Fields {
			field := &FieldInit{Name: f.Name.ident()}
			field.Pos, field.EndPos = f.Span.positions()
			if field.Value, err = decodeExpr(f.Value); err != nil {
				return nil, err
			}
			expr.Fields = append(expr.Fields, field)
		}
		return expr, nil

	case "try":
		var wire struct {
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed try: %w", err)
		}
		expr := &TryExpr{}
		expr.Pos, expr.EndPos = span.positions()
		if expr.Value, err = decodeExpr(wire.Value); err != nil {
			return nil, err
		}
		return expr, nil

	case "generic_inst":
		var wire struct {
			Target   json.RawMessage   `json:"target"`
			TypeArgs []json.RawMessage `json:"typeArgs"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed generic instantiation: %w", err)
		}
		expr := &GenericInstExpr{}
		expr.Pos, expr.EndPos = span.positions()
		if expr.Target, err = decodeExpr(wire.Target); err != nil {
			return nil, err
		}
		for _, arg := range wire.TypeArgs {
			typeArg, err := decodeTypeRef(arg)
			if err != nil {
				return nil, err
			}
			expr.TypeArgs = append(expr.TypeArgs, typeArg)
		}
		return expr, nil

	case "ident":
		var wire struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed ident: %w", err)
		}
		expr := &IdentExpr{Name: wire.Name}
		expr.Pos, expr.EndPos = span.positions()
		return expr, nil

	case "literal":
		var wire struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("malformed literal: %w", err)
		}
		expr := &LiteralExpr{Value: wire.Value}
		expr.Pos, expr.EndPos = span.positions()
		return expr, nil

	default:
		return nil, fmt.Errorf("unknown expression kind %q", kind)
	}
}
