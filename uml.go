package shapefmt

import "fmt"

// ToPlantUML renders a PlantUML class block using the generic tag
// vocabulary for attribute types.
func ToPlantUML(v any, name string) string {
	return renderDecl(v, name, declTarget{
		open:  func(n string) string { return "@startuml\nclass " + n + " {\n" },
		line:  func(_ int, f Field, typ string) string { return fmt.Sprintf("  %s: %s\n", f.Name, typ) },
		close: "}\n@enduml",
		types: genericTypes,
	})
}

// ToMermaidClass renders a Mermaid classDiagram block.
func ToMermaidClass(v any, name string) string {
	return renderDecl(v, name, declTarget{
		open:  func(n string) string { return "classDiagram\nclass " + n + " {\n" },
		line:  func(_ int, f Field, typ string) string { return fmt.Sprintf("  %s: %s\n", f.Name, typ) },
		close: "}",
		types: genericTypes,
	})
}
