package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder

	for i, item := range p.Items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(item.String())
	}

	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (c *Contract) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("contract %s {\n", c.Name.Value))
	for _, member := range c.Members {
		b.WriteString("  " + strings.ReplaceAll(member.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")

	return b.String()
}

func (s *Storage) String() string {
	var b strings.Builder

	b.WriteString("storage {\n")
	for _, field := range s.Fields {
		b.WriteString("  " + field.String() + ",\n")
	}
	b.WriteString("}")

	return b.String()
}

func (sf *StorageField) String() string {
	if sf.Type == nil {
		return sf.Name.Value
	}
	return fmt.Sprintf("%s: %s", sf.Name.Value, sf.Type.String())
}

func (i *Init) String() string {
	var b strings.Builder

	b.WriteString("init(")
	for j, param := range i.Params {
		if j > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.String())
	}
	b.WriteString(") ")
	if i.Body != nil {
		b.WriteString(i.Body.String())
	} else {
		b.WriteString("{}")
	}

	return b.String()
}

func (u *Use) String() string {
	parts := make([]string, 0, len(u.Path))
	for _, seg := range u.Path {
		parts = append(parts, seg.Value)
	}
	return "use " + strings.Join(parts, "::") + ";"
}

func (s *Struct) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("struct %s {", s.Name.Value))
	for i, field := range s.Fields {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" " + field.String())
	}
	b.WriteString(" }")

	return b.String()
}

func (sf *StructField) String() string {
	if sf.Type == nil {
		return sf.Name.Value
	}
	return fmt.Sprintf("%s: %s", sf.Name.Value, sf.Type.String())
}

func (f *Function) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("fn %s(", f.Name.Value))
	for i, param := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.String())
	}
	b.WriteString(")")

	if f.Return != nil {
		b.WriteString(" -> " + f.Return.String())
	}

	b.WriteString(" ")
	if f.Body != nil {
		b.WriteString(f.Body.String())
	} else {
		b.WriteString("{}")
	}

	return b.String()
}

func (p *Param) String() string {
	if p.Type == nil {
		return p.Name.Value
	}
	return fmt.Sprintf("%s: %s", p.Name.Value, p.Type.String())
}

func (t *TypeRef) String() string {
	if len(t.Generics) == 0 {
		return t.Name.Value
	}

	generics := make([]string, 0, len(t.Generics))
	for _, g := range t.Generics {
		generics = append(generics, g.String())
	}
	return fmt.Sprintf("%s<%s>", t.Name.Value, strings.Join(generics, ", "))
}

func (b *Block) String() string {
	var sb strings.Builder

	sb.WriteString("{\n")
	for _, stmt := range b.Stmts {
		sb.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")

	return sb.String()
}

func (l *LetStmt) String() string {
	keyword := "let"
	if l.Mut {
		keyword = "let mut"
	}
	if l.Init == nil {
		return fmt.Sprintf("%s %s;", keyword, l.Name.Value)
	}
	return fmt.Sprintf("%s %s = %s;", keyword, l.Name.Value, l.Init.String())
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.Value.String())
}

func (i *IfStmt) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("if %s ", i.Cond.String()))
	b.WriteString(i.Then.String())
	if i.Else != nil {
		b.WriteString(" else ")
		b.WriteString(i.Else.String())
	}

	return b.String()
}

func (w *WhileStmt) String() string {
	return fmt.Sprintf("while %s %s", w.Cond.String(), w.Body.String())
}

func (f *ForStmt) String() string {
	return fmt.Sprintf("for %s in %s..%s %s", f.Var.Value, f.Start.String(), f.End.String(), f.Body.String())
}

func (b *BreakStmt) String() string {
	return "break;"
}

func (c *ContinueStmt) String() string {
	return "continue;"
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Op.String(), b.Right.String())
}

func (u *UnaryExpr) String() string {
	return u.Op + u.Value.String()
}

func (c *CallExpr) String() string {
	args := make([]string, 0, len(c.Args))
	for _, arg := range c.Args {
		args = append(args, arg.String())
	}
	return fmt.Sprintf("%s(%s)", c.Callee.String(), strings.Join(args, ", "))
}

func (f *FieldAccessExpr) String() string {
	return fmt.Sprintf("%s.%s", f.Target.String(), f.Field)
}

func (i *IndexExpr) String() string {
	return fmt.Sprintf("%s[%s]", i.Target.String(), i.Index.String())
}

func (m *MatchExpr) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("match %s {\n", m.Scrutinee.String()))
	for _, arm := range m.Arms {
		b.WriteString("  " + arm.String() + ",\n")
	}
	b.WriteString("}")

	return b.String()
}

func (a *MatchArm) String() string {
	if a.Guard != nil {
		return fmt.Sprintf("%s if %s => %s", a.Pattern, a.Guard.String(), a.Body.String())
	}
	return fmt.Sprintf("%s => %s", a.Pattern, a.Body.String())
}

func (s *StructInitExpr) String() string {
	fields := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		fields = append(fields, field.String())
	}
	return fmt.Sprintf("%s { %s }", s.Name.Value, strings.Join(fields, ", "))
}

func (f *FieldInit) String() string {
	return fmt.Sprintf("%s: %s", f.Name.Value, f.Value.String())
}

func (t *TryExpr) String() string {
	return t.Value.String() + "?"
}

func (g *GenericInstExpr) String() string {
	args := make([]string, 0, len(g.TypeArgs))
	for _, arg := range g.TypeArgs {
		args = append(args, arg.String())
	}
	return fmt.Sprintf("%s<%s>", g.Target.String(), strings.Join(args, ", "))
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (l *LiteralExpr) String() string {
	return l.Value
}
