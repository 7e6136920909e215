package validate

import "github.com/zbigniewsobiecki/sysml2/internal/model"

// kerMLFeatureCounterpart maps the KerML feature-like kinds that have one
// natural SysML definition counterpart (spec.md §4.4: "and with the
// corresponding SysML definition kinds"). Feature and Parameter have no
// single counterpart — they are compatible with every definition kind
// instead (handled separately in IsCompatible), matching the explicit
// "Parameter is compatible with every definition kind" rule and spec.md
// §9's note that Parameter's breadth is deliberate.
var kerMLFeatureCounterpart = map[model.Kind]model.Kind{
	model.KindStep:       model.KindActionDef,
	model.KindExpression: model.KindCalculationDef,
	model.KindConnector:  model.KindConnectionDef,
}

// IsCompatible implements the type-compatibility table of spec.md §4.4:
// usageKind is the kind doing the referencing (the element whose
// TypedBy/Redefines/etc. points at referentKind), referentKind is the
// kind being pointed at.
func IsCompatible(usageKind, referentKind model.Kind) bool {
	// Any usage is compatible with a Package/LibraryPackage reference
	// (opaque library references).
	if referentKind.IsPackageLike() {
		return true
	}

	// Usages are compatible with their matching Def.
	if def, ok := usageKind.MatchingDef(); ok && def == referentKind {
		return true
	}

	// Part usages are additionally compatible with ItemDef.
	if usageKind == model.KindPartUsage && referentKind == model.KindItemDef {
		return true
	}

	// State usages are compatible with ActionDef (state-action pattern).
	if usageKind == model.KindStateUsage && referentKind == model.KindActionDef {
		return true
	}

	// KerML Feature/Step/Expression/Connector/Parameter are compatible
	// with any KerML classifier and with their corresponding SysML
	// definition kind (Parameter and Feature: every definition kind).
	if usageKind.IsKerMLFeatureLike() {
		if referentKind.IsKerMLClassifier() {
			return true
		}
		switch usageKind {
		case model.KindParameter, model.KindFeature:
			if referentKind.IsDefinition() {
				return true
			}
		default:
			if counterpart, ok := kerMLFeatureCounterpart[usageKind]; ok && counterpart == referentKind {
				return true
			}
		}
	}

	return false
}
