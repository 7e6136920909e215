package model

// Kind is the closed set of KerML/SysML v2 element kinds this engine
// understands. Kind-specific attributes live flatly on Element (spec.md
// §9 design note 2) rather than in a per-kind struct hierarchy.
type Kind uint8

const (
	KindUnknown Kind = iota

	// Namespacing.
	KindPackage
	KindLibraryPackage

	// SysML v2 definitions.
	KindPartDef
	KindItemDef
	KindAttributeDef
	KindActionDef
	KindStateDef
	KindConnectionDef
	KindInterfaceDef
	KindPortDef
	KindFlowDef
	KindAllocationDef
	KindRequirementDef
	KindConstraintDef
	KindConcernDef
	KindCalculationDef
	KindCaseDef
	KindAnalysisCaseDef
	KindVerificationCaseDef
	KindUseCaseDef
	KindViewDef
	KindViewpointDef
	KindRenderingDef
	KindMetadataDef
	KindEnumerationDef
	KindOccurrenceDef
	KindIndividualDef
	KindStakeholderDef
	KindActorDef

	// SysML v2 usages.
	KindPartUsage
	KindItemUsage
	KindAttributeUsage
	KindActionUsage
	KindStateUsage
	KindConnectionUsage
	KindInterfaceUsage
	KindPortUsage
	KindFlowUsage
	KindAllocationUsage
	KindRequirementUsage
	KindConstraintUsage
	KindConcernUsage
	KindCalculationUsage
	KindCaseUsage
	KindAnalysisCaseUsage
	KindVerificationCaseUsage
	KindUseCaseUsage
	KindViewUsage
	KindViewpointUsage
	KindRenderingUsage
	KindMetadataUsage
	KindEnumerationUsage
	KindOccurrenceUsage
	KindIndividualUsage
	KindStakeholderUsage
	KindActorUsage
	KindSubjectUsage
	KindObjectiveUsage
	KindPerformActionUsage
	KindExhibitStateUsage
	KindIncludeUseCaseUsage
	KindSatisfyRequirementUsage
	KindAssertConstraintUsage

	// Behavioral control elements (not def/usage paired).
	KindTransitionUsage
	KindSuccessionUsage

	// KerML classifiers.
	KindClass
	KindStructure
	KindBehavior
	KindAssociation
	KindInteraction
	KindFunction
	KindPredicate
	KindType
	KindClassifier

	// KerML feature-like kinds.
	KindFeature
	KindStep
	KindExpression
	KindConnector
	KindParameter
	KindMultiplicity

	// Annotating / supporting elements.
	KindComment
	KindDocumentation
	KindTextualRepresentation
	KindMetadataUsageKerML
	KindDependency
	KindLibrary

	// kindCount is not a real kind; it bounds the closed set.
	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown:                 "Unknown",
	KindPackage:                 "Package",
	KindLibraryPackage:          "LibraryPackage",
	KindPartDef:                 "PartDef",
	KindItemDef:                 "ItemDef",
	KindAttributeDef:            "AttributeDef",
	KindActionDef:               "ActionDef",
	KindStateDef:                "StateDef",
	KindConnectionDef:           "ConnectionDef",
	KindInterfaceDef:            "InterfaceDef",
	KindPortDef:                 "PortDef",
	KindFlowDef:                 "FlowDef",
	KindAllocationDef:           "AllocationDef",
	KindRequirementDef:          "RequirementDef",
	KindConstraintDef:           "ConstraintDef",
	KindConcernDef:              "ConcernDef",
	KindCalculationDef:          "CalculationDef",
	KindCaseDef:                 "CaseDef",
	KindAnalysisCaseDef:         "AnalysisCaseDef",
	KindVerificationCaseDef:     "VerificationCaseDef",
	KindUseCaseDef:              "UseCaseDef",
	KindViewDef:                 "ViewDef",
	KindViewpointDef:            "ViewpointDef",
	KindRenderingDef:            "RenderingDef",
	KindMetadataDef:             "MetadataDef",
	KindEnumerationDef:          "EnumerationDef",
	KindOccurrenceDef:           "OccurrenceDef",
	KindIndividualDef:           "IndividualDef",
	KindStakeholderDef:          "StakeholderDef",
	KindActorDef:                "ActorDef",
	KindPartUsage:               "PartUsage",
	KindItemUsage:               "ItemUsage",
	KindAttributeUsage:          "AttributeUsage",
	KindActionUsage:             "ActionUsage",
	KindStateUsage:              "StateUsage",
	KindConnectionUsage:         "ConnectionUsage",
	KindInterfaceUsage:          "InterfaceUsage",
	KindPortUsage:               "PortUsage",
	KindFlowUsage:               "FlowUsage",
	KindAllocationUsage:         "AllocationUsage",
	KindRequirementUsage:        "RequirementUsage",
	KindConstraintUsage:         "ConstraintUsage",
	KindConcernUsage:            "ConcernUsage",
	KindCalculationUsage:        "CalculationUsage",
	KindCaseUsage:               "CaseUsage",
	KindAnalysisCaseUsage:       "AnalysisCaseUsage",
	KindVerificationCaseUsage:   "VerificationCaseUsage",
	KindUseCaseUsage:            "UseCaseUsage",
	KindViewUsage:               "ViewUsage",
	KindViewpointUsage:          "ViewpointUsage",
	KindRenderingUsage:          "RenderingUsage",
	KindMetadataUsage:           "MetadataUsage",
	KindEnumerationUsage:        "EnumerationUsage",
	KindOccurrenceUsage:         "OccurrenceUsage",
	KindIndividualUsage:         "IndividualUsage",
	KindStakeholderUsage:        "StakeholderUsage",
	KindActorUsage:              "ActorUsage",
	KindSubjectUsage:            "SubjectUsage",
	KindObjectiveUsage:          "ObjectiveUsage",
	KindPerformActionUsage:      "PerformActionUsage",
	KindExhibitStateUsage:       "ExhibitStateUsage",
	KindIncludeUseCaseUsage:     "IncludeUseCaseUsage",
	KindSatisfyRequirementUsage: "SatisfyRequirementUsage",
	KindAssertConstraintUsage:   "AssertConstraintUsage",
	KindTransitionUsage:         "TransitionUsage",
	KindSuccessionUsage:         "SuccessionUsage",
	KindClass:                   "Class",
	KindStructure:               "Structure",
	KindBehavior:                "Behavior",
	KindAssociation:             "Association",
	KindInteraction:             "Interaction",
	KindFunction:                "Function",
	KindPredicate:               "Predicate",
	KindType:                    "Type",
	KindClassifier:              "Classifier",
	KindFeature:                 "Feature",
	KindStep:                    "Step",
	KindExpression:              "Expression",
	KindConnector:               "Connector",
	KindParameter:               "Parameter",
	KindMultiplicity:            "Multiplicity",
	KindComment:                 "Comment",
	KindDocumentation:           "Documentation",
	KindTextualRepresentation:   "TextualRepresentation",
	KindMetadataUsageKerML:      "MetadataFeature",
	KindDependency:              "Dependency",
	KindLibrary:                 "Library",
}

// String returns the kind's SysML v2/KerML notation name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// defToUsage and usageToDef pair each *Def kind with its *Usage
// counterpart, per spec.md §4.4's type-compatibility table ("Usages are
// compatible with their matching Def").
var defToUsage = map[Kind]Kind{
	KindPartDef:             KindPartUsage,
	KindItemDef:             KindItemUsage,
	KindAttributeDef:        KindAttributeUsage,
	KindActionDef:           KindActionUsage,
	KindStateDef:            KindStateUsage,
	KindConnectionDef:       KindConnectionUsage,
	KindInterfaceDef:        KindInterfaceUsage,
	KindPortDef:             KindPortUsage,
	KindFlowDef:             KindFlowUsage,
	KindAllocationDef:       KindAllocationUsage,
	KindRequirementDef:      KindRequirementUsage,
	KindConstraintDef:       KindConstraintUsage,
	KindConcernDef:          KindConcernUsage,
	KindCalculationDef:      KindCalculationUsage,
	KindCaseDef:             KindCaseUsage,
	KindAnalysisCaseDef:     KindAnalysisCaseUsage,
	KindVerificationCaseDef: KindVerificationCaseUsage,
	KindUseCaseDef:          KindUseCaseUsage,
	KindViewDef:             KindViewUsage,
	KindViewpointDef:        KindViewpointUsage,
	KindRenderingDef:        KindRenderingUsage,
	KindMetadataDef:         KindMetadataUsage,
	KindEnumerationDef:      KindEnumerationUsage,
	KindOccurrenceDef:       KindOccurrenceUsage,
	KindIndividualDef:       KindIndividualUsage,
	KindStakeholderDef:      KindStakeholderUsage,
	KindActorDef:            KindActorUsage,
}

var usageToDef = func() map[Kind]Kind {
	m := make(map[Kind]Kind, len(defToUsage))
	for d, u := range defToUsage {
		m[u] = d
	}
	return m
}()

// IsDefinition reports whether k is one of the *Def kinds.
func (k Kind) IsDefinition() bool {
	_, ok := defToUsage[k]
	return ok
}

// IsUsage reports whether k is one of the *Usage kinds with a matching
// *Def counterpart (spec.md §9 decision 2: StakeholderUsage and
// ActorUsage follow the same rule via StakeholderDef/ActorDef; usages
// with no Def counterpart at all, such as SubjectUsage, are excluded).
func (k Kind) IsUsage() bool {
	_, ok := usageToDef[k]
	return ok
}

// MatchingDef returns the *Def kind that k (a usage) is naturally typed
// by, and true if one exists.
func (k Kind) MatchingDef() (Kind, bool) {
	d, ok := usageToDef[k]
	return d, ok
}

// IsKerMLClassifier reports whether k is one of the general KerML
// classifier kinds (Class, Structure, Behavior, Association, Interaction,
// Function, Predicate, Type, Classifier).
func (k Kind) IsKerMLClassifier() bool {
	switch k {
	case KindClass, KindStructure, KindBehavior, KindAssociation,
		KindInteraction, KindFunction, KindPredicate, KindType, KindClassifier:
		return true
	}
	return false
}

// IsKerMLFeatureLike reports whether k is one of Feature, Step,
// Expression, Connector, Parameter — the KerML kinds compatible with any
// KerML classifier per spec.md §4.4.
func (k Kind) IsKerMLFeatureLike() bool {
	switch k {
	case KindFeature, KindStep, KindExpression, KindConnector, KindParameter:
		return true
	}
	return false
}

// IsPackageLike reports whether k is Package or LibraryPackage.
func (k Kind) IsPackageLike() bool {
	return k == KindPackage || k == KindLibraryPackage
}
