//Package cellSynthesis generates fictitious battery cell specifications. Each row gets a uniformly chosen
//cell type and all remaining fields are drawn from ranges that belong to that type
package cellSynthesis

import "fmt"

//CellType is the battery form factor. It drives the distribution of every other field
type CellType int

const (
	Cylindrical CellType = iota
	Pouch
	Prismatic
)

//AllCellTypes lists the types in the order used for uniform selection
var AllCellTypes = []CellType{Cylindrical, Pouch, Prismatic}

var cellTypeNames = map[CellType]string{
	Cylindrical: "Cylindrical",
	Pouch:       "Pouch",
	Prismatic:   "Prismatic",
}

func (c CellType) String() string {
	if name, ok := cellTypeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CellType(%d)", int(c))
}

//ParseCellType is the inverse of String
func ParseCellType(name string) (CellType, error) {
	for cellType, typeName := range cellTypeNames {
		if typeName == name {
			return cellType, nil
		}
	}
	return 0, fmt.Errorf("unknown cell type %q", name)
}
