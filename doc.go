/*
go-roiannotate interprets the per object inference outputs attached to video
frames and turns them into overlays and side channel metadata.

A media pipeline delivers each Frame with its detected regions of interest
(ROIs), and each ROI carries the raw output tensors of the classification
models run against it, such as age/gender, emotion and head pose estimation.
The postprocess package derives a typed Annotation from those tensors, the
render package draws the label and a 3D head pose axis glyph onto the frame,
and the metadata package emits a compact record per ROI for embedding in the
encoded bitstream.  The annotate package ties these together per frame.

Nothing in this module decodes or encodes video, runs inference or builds the
pipeline.  See the example subdirectory for usage.
*/
package roiannotate
