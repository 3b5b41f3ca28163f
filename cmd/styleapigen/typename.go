package main

import (
	"errors"
	"fmt"
	"strings"

	"modernc.org/cc/v3"
)

// makeFuncParams renders each parameter's type as it would be spelled in a declaration, e.g.
// "const lv_font_t *".
func makeFuncParams(paramList *cc.ParameterList) ([]FunctionParam, error) {
	var params []FunctionParam
	// parameter_list
	//   : parameter_declaration
	//   | parameter_list ',' parameter_declaration
	//   ;
	for pl := paramList; pl != nil; pl = pl.ParameterList {
		// parameter_declaration
		//   : declaration_specifiers declarator
		//   | declaration_specifiers abstract_declarator
		//   | declaration_specifiers
		//   ;
		pd := pl.ParameterDeclaration
		var paramType strings.Builder
		var name string
		if err := writeDeclSpec(&paramType, pd.DeclarationSpecifiers); err != nil {
			return nil, err
		}
		if decl := pd.Declarator; decl != nil {
			if err := writePointer(&paramType, decl.Pointer); err != nil {
				return nil, err
			}
			if dirDecl := decl.DirectDeclarator; dirDecl != nil {
				if dirDecl.Case != cc.DirectDeclaratorIdent {
					return nil, errors.New("nested direct_declarator found")
				}
				name = dirDecl.Name().String()
			}
		}
		if absDecl := pd.AbstractDeclarator; absDecl != nil {
			if err := writePointer(&paramType, absDecl.Pointer); err != nil {
				return nil, err
			}
			if absDecl.DirectAbstractDeclarator != nil {
				return nil, errors.New("direct_abstract_declarator found")
			}
		}
		params = append(params, FunctionParam{
			Name: name,
			Type: strings.TrimSpace(paramType.String()),
		})
	}
	return params, nil
}

func returnTypeName(declSpec *cc.DeclarationSpecifiers, pointer *cc.Pointer) (string, error) {
	var result strings.Builder
	if err := writeDeclSpec(&result, declSpec); err != nil {
		return "", err
	}
	if err := writePointer(&result, pointer); err != nil {
		return "", err
	}
	return strings.TrimSpace(result.String()), nil
}

func writeDeclSpec(dst *strings.Builder, declSpec *cc.DeclarationSpecifiers) error {
	// declaration_specifiers
	//   : storage_class_specifier
	//   | type_specifier
	//   | type_qualifier
	//   | function_specifier
	//   ...
	//   ;
	// storage class (static) and function specifiers (inline) are not part of the type.
	for ds := declSpec; ds != nil; ds = ds.DeclarationSpecifiers {
		if ts := ds.TypeSpecifier; ts != nil {
			if err := writeTypeSpec(dst, ts); err != nil {
				return err
			}
		}
		if tq := ds.TypeQualifier; tq != nil {
			if err := writeTypeQual(dst, tq); err != nil {
				return err
			}
		}
	}
	return nil
}

func writePointer(dst *strings.Builder, pointer *cc.Pointer) error {
	// pointer
	//   : '*'
	//   | '*' type_qualifier_list
	//   | '*' pointer
	//   | '*' type_qualifier_list pointer
	//   ;
	for p := pointer; p != nil; p = p.Pointer {
		dst.WriteRune('*')
		if tql := p.TypeQualifiers; tql != nil {
			dst.WriteRune(' ')
			if err := writeTypeQualList(dst, tql); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeTypeQual(dst *strings.Builder, typeQual *cc.TypeQualifier) error {
	switch typeQual.Case {
	case cc.TypeQualifierConst:
		dst.WriteString("const ")
	case cc.TypeQualifierRestrict:
		dst.WriteString("restrict ")
	case cc.TypeQualifierVolatile:
		dst.WriteString("volatile ")
	default:
		return fmt.Errorf("unhandled type_qualifier case %s", typeQual.Case)
	}
	return nil
}

func writeTypeSpec(dst *strings.Builder, typeSpec *cc.TypeSpecifier) error {
	switch typeSpec.Case {
	case cc.TypeSpecifierVoid:
		dst.WriteString("void ")
	case cc.TypeSpecifierChar:
		dst.WriteString("char ")
	case cc.TypeSpecifierShort:
		dst.WriteString("short ")
	case cc.TypeSpecifierInt:
		dst.WriteString("int ")
	case cc.TypeSpecifierLong:
		dst.WriteString("long ")
	case cc.TypeSpecifierFloat:
		dst.WriteString("float ")
	case cc.TypeSpecifierDouble:
		dst.WriteString("double ")
	case cc.TypeSpecifierSigned:
		dst.WriteString("signed ")
	case cc.TypeSpecifierUnsigned:
		dst.WriteString("unsigned ")
	case cc.TypeSpecifierBool:
		dst.WriteString("_Bool ")
	case cc.TypeSpecifierStructOrUnion:
		// struct_or_union_specifier
		//   : struct_or_union IDENTIFIER '{' struct_declaration_list '}'
		//   | struct_or_union '{' struct_declaration_list '}'
		//   | struct_or_union IDENTIFIER
		//   ;
		sus := typeSpec.StructOrUnionSpecifier
		if sus.StructDeclarationList != nil {
			return errors.New("unhandled struct_declaration_list on struct_or_union_specifier")
		}
		switch sus.StructOrUnion.Case {
		case cc.StructOrUnionStruct:
			dst.WriteString("struct ")
		case cc.StructOrUnionUnion:
			dst.WriteString("union ")
		default:
			return fmt.Errorf("unhandled struct_or_union case %s", sus.StructOrUnion.Case)
		}
		dst.WriteString(sus.Token.String())
		dst.WriteRune(' ')
	case cc.TypeSpecifierEnum:
		es := typeSpec.EnumSpecifier
		if es.EnumeratorList != nil {
			return errors.New("unhandled enumerator_list on enum_specifier")
		}
		dst.WriteString("enum ")
		dst.WriteString(es.Token2.String())
		dst.WriteRune(' ')
	case cc.TypeSpecifierTypedefName:
		dst.WriteString(typeSpec.Token.String())
		dst.WriteRune(' ')
	default:
		return fmt.Errorf("unhandled type_specifier case %s", typeSpec.Case)
	}
	return nil
}

func writeTypeQualList(dst *strings.Builder, typeQualList *cc.TypeQualifiers) error {
	for tql := typeQualList; tql != nil; tql = tql.TypeQualifiers {
		if err := writeTypeQual(dst, tql.TypeQualifier); err != nil {
			return err
		}
	}
	return nil
}
