package panel

// TabIcon is the pre-built glyph shown next to the summary label. The
// asset is produced by the design pipeline and embedded as-is.
const TabIcon = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAABAAAAAQCAYAAAAf8/9hAAAAOUlEQVR42mNgoBSYZG35TwkGG/Dm00+yMNgAGdf2/5TgQWAAxWEweAw4ee0FVkw/AwY2DCjKCwMOAFYUdH+AtAXHAAAAAElFTkSuQmCC"
