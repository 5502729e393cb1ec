package shapefmt

import (
	"fmt"
	"unicode"
)

// ToTSInterface renders a TypeScript interface declaration for the
// representative record's shape.
func ToTSInterface(v any, name string) string {
	return renderDecl(v, name, declTarget{
		open:  func(n string) string { return "interface " + n + " {\n" },
		line:  func(_ int, f Field, typ string) string { return fmt.Sprintf("  %s: %s;\n", f.Name, typ) },
		close: "}",
		types: typeTable{
			scalars: map[TypeTag]string{
				TagString: "string",
				TagNumber: "number",
				TagBool:   "boolean",
				TagObject: "object",
			},
			array:    func(inner string) string { return inner + "[]" },
			fallback: "any",
		},
	})
}

// ToGoStruct renders a Go struct declaration. Field names are exported by
// upper-casing the first rune; the original name survives in a json tag.
func ToGoStruct(v any, name string) string {
	return renderDecl(v, name, declTarget{
		open: func(n string) string { return "type " + n + " struct {\n" },
		line: func(_ int, f Field, typ string) string {
			return fmt.Sprintf("\t%s %s `json:%q`\n", exportName(f.Name), typ, f.Name)
		},
		close: "}",
		types: typeTable{
			scalars: map[TypeTag]string{
				TagString: "string",
				TagNumber: "float64",
				TagBool:   "bool",
				TagObject: "map[string]any",
			},
			array:    func(inner string) string { return "[]" + inner },
			fallback: "any",
		},
	})
}

// ToRustStruct renders a Rust struct declaration.
func ToRustStruct(v any, name string) string {
	return renderDecl(v, name, declTarget{
		open:  func(n string) string { return "struct " + n + " {\n" },
		line:  func(_ int, f Field, typ string) string { return fmt.Sprintf("    %s: %s,\n", f.Name, typ) },
		close: "}",
		types: typeTable{
			scalars: map[TypeTag]string{
				TagString: "String",
				TagNumber: "i32",
				TagBool:   "bool",
			},
			array:    func(inner string) string { return "Vec<" + inner + ">" },
			fallback: "serde_json::Value",
		},
	})
}

// ToCSharpClass renders a C# class with auto-properties.
func ToCSharpClass(v any, name string) string {
	return renderDecl(v, name, declTarget{
		open: func(n string) string { return "public class " + n + " {\n" },
		line: func(_ int, f Field, typ string) string {
			return fmt.Sprintf("  public %s %s { get; set; }\n", typ, f.Name)
		},
		close: "}",
		types: typeTable{
			scalars: map[TypeTag]string{
				TagString: "string",
				TagNumber: "double",
				TagBool:   "bool",
			},
			array:    func(inner string) string { return "List<" + inner + ">" },
			fallback: "object",
		},
	})
}

// ToJavaClass renders a Java class with private fields.
func ToJavaClass(v any, name string) string {
	return renderDecl(v, name, declTarget{
		open:  func(n string) string { return "public class " + n + " {\n" },
		line:  func(_ int, f Field, typ string) string { return fmt.Sprintf("  private %s %s;\n", typ, f.Name) },
		close: "}",
		types: typeTable{
			scalars: map[TypeTag]string{
				TagString: "String",
				TagNumber: "double",
				TagBool:   "boolean",
			},
			array:    func(inner string) string { return "List<" + inner + ">" },
			fallback: "Object",
		},
	})
}

// ToPythonClass renders a Python class with annotated attributes.
func ToPythonClass(v any, name string) string {
	return renderDecl(v, name, declTarget{
		open:  func(n string) string { return "class " + n + ":\n" },
		line:  func(_ int, f Field, typ string) string { return fmt.Sprintf("    %s: %s\n", f.Name, typ) },
		close: "",
		types: typeTable{
			scalars: map[TypeTag]string{
				TagString: "str",
				TagNumber: "float",
				TagBool:   "bool",
				TagObject: "dict",
			},
			array:    func(inner string) string { return "list[" + inner + "]" },
			fallback: "Any",
		},
	})
}

// ToDartClass renders a Dart class declaration.
func ToDartClass(v any, name string) string {
	return renderDecl(v, name, declTarget{
		open:  func(n string) string { return "class " + n + " {\n" },
		line:  func(_ int, f Field, typ string) string { return fmt.Sprintf("  %s %s;\n", typ, f.Name) },
		close: "}",
		types: typeTable{
			scalars: map[TypeTag]string{
				TagString: "String",
				TagNumber: "num",
				TagBool:   "bool",
				TagObject: "Map<String, dynamic>",
			},
			array:    func(inner string) string { return "List<" + inner + ">" },
			fallback: "dynamic",
		},
	})
}

// ToProtoMessage renders a protobuf message with sequentially numbered
// fields. Array tags become repeated fields.
func ToProtoMessage(v any, name string) string {
	return renderDecl(v, name, declTarget{
		open: func(n string) string { return "message " + n + " {\n" },
		line: func(i int, f Field, typ string) string {
			return fmt.Sprintf("  %s %s = %d;\n", typ, f.Name, i+1)
		},
		close: "}",
		types: typeTable{
			scalars: map[TypeTag]string{
				TagString: "string",
				TagNumber: "int32",
				TagBool:   "bool",
			},
			array:    func(inner string) string { return "repeated " + inner },
			fallback: "string",
		},
	})
}

func exportName(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
