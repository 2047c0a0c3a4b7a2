package types

// The enumerated option kinds are plain string types rather than
// closed sets: the compiler grows new values faster than any library
// tracks them, and semantic validation is out of scope here. The
// constants cover the values in common use.

// Jsx controls JSX emit.
type Jsx string

const (
	JsxReact       Jsx = "react"
	JsxReactJsx    Jsx = "react-jsx"
	JsxReactJsxdev Jsx = "react-jsxdev"
	JsxReactNative Jsx = "react-native"
	JsxPreserve    Jsx = "preserve"
)

// Target selects the emitted JavaScript language level.
type Target string

const (
	TargetES3    Target = "ES3"
	TargetES5    Target = "ES5"
	TargetES6    Target = "ES6"
	TargetES2015 Target = "ES2015"
	TargetES2016 Target = "ES2016"
	TargetES2017 Target = "ES2017"
	TargetES2018 Target = "ES2018"
	TargetES2019 Target = "ES2019"
	TargetES2020 Target = "ES2020"
	TargetES2021 Target = "ES2021"
	TargetES2022 Target = "ES2022"
	TargetESNext Target = "ESNext"
)

// ModuleKind selects the module system of the emitted code.
type ModuleKind string

const (
	ModuleCommonJS ModuleKind = "CommonJS"
	ModuleES6      ModuleKind = "ES6"
	ModuleES2015   ModuleKind = "ES2015"
	ModuleES2020   ModuleKind = "ES2020"
	ModuleES2022   ModuleKind = "ES2022"
	ModuleNone     ModuleKind = "None"
	ModuleUMD      ModuleKind = "UMD"
	ModuleAMD      ModuleKind = "AMD"
	ModuleSystem   ModuleKind = "System"
	ModuleNode16   ModuleKind = "Node16"
	ModuleNodeNext ModuleKind = "NodeNext"
	ModuleESNext   ModuleKind = "ESNext"
)

// ModuleResolution selects the module resolution strategy.
type ModuleResolution string

const (
	ModuleResolutionClassic  ModuleResolution = "classic"
	ModuleResolutionNode     ModuleResolution = "node"
	ModuleResolutionNode16   ModuleResolution = "node16"
	ModuleResolutionNodeNext ModuleResolution = "nodenext"
	ModuleResolutionBundler  ModuleResolution = "bundler"
)

// Lib names a bundled type definition library, e.g. "ES2020" or
// "DOM.Iterable".
type Lib string

const (
	LibES5         Lib = "ES5"
	LibES6         Lib = "ES6"
	LibES2015      Lib = "ES2015"
	LibES2016      Lib = "ES2016"
	LibES2017      Lib = "ES2017"
	LibES2018      Lib = "ES2018"
	LibES2019      Lib = "ES2019"
	LibES2020      Lib = "ES2020"
	LibESNext      Lib = "ESNext"
	LibDOM         Lib = "DOM"
	LibDOMIterable Lib = "DOM.Iterable"
	LibWebWorker   Lib = "WebWorker"
	LibScriptHost  Lib = "ScriptHost"
)
